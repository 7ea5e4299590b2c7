package main

import (
	"fmt"
	"log"
	"os"

	"oncoscreen/internal/config"
	"oncoscreen/internal/database"
	"oncoscreen/internal/risk"
	"oncoscreen/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	model := risk.Load(cfg.ModelDir)
	if model.Loaded {
		log.Printf("risk model loaded (%d features)", len(model.FeatureNames))
	} else {
		log.Println("risk model running in fallback mode")
	}

	r := server.NewRouter(cfg, model)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
