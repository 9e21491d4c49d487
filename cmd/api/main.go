package main

import (
	"context"
	"log"

	"leaseflow/config"
	"leaseflow/db"
	"leaseflow/decision"
	"leaseflow/refundpolicy"
	"leaseflow/seasonal"
	"leaseflow/workflowconfig"
)

func main() {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("bootstrap config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("bootstrap database pool: %v", err)
	}
	defer pool.Close()

	svc := decision.NewService(
		workflowconfig.NewRepository(pool),
		refundpolicy.NewRepository(pool),
		seasonal.NewRepository(pool),
	).WithAuditLog(decision.NewAuditLog(pool))
	if cfg.ReceiptSecret != "" {
		svc = svc.WithReceiptSigner(decision.NewReceiptSigner(cfg.ReceiptSecret, cfg.ReceiptIssuer))
	}

	log.Printf("decision service ready: %+v", svc != nil)
}
