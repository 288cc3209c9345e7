package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"

	"example.com/protein-store/internal/config"
	"example.com/protein-store/internal/infra/media"
	mysqlrepo "example.com/protein-store/internal/infra/persistence/mysql"
	"example.com/protein-store/internal/infra/security"
	httpapi "example.com/protein-store/internal/interface/http"
	authuc "example.com/protein-store/internal/usecase/auth"
	contentuc "example.com/protein-store/internal/usecase/content"
	productuc "example.com/protein-store/internal/usecase/product"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("opening mysql: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mysqlrepo.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrating schema: %v", err)
	}
	cancel()

	mediaStore, err := media.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("creating upload dir: %v", err)
	}

	hasher := security.NewPasswordHasher(0)
	adminHash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("hashing admin password: %v", err)
	}
	tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	api := httpapi.NewAPI(httpapi.Dependencies{
		ProductService: productuc.NewService(mysqlrepo.NewProductRepository(db)),
		ContentService: contentuc.NewService(mysqlrepo.NewAboutRepository(db), mysqlrepo.NewContactRepository(db)),
		AuthService:    authuc.NewService(cfg.AdminUsername, adminHash, hasher, tokenSvc),
		TokenService:   tokenSvc,
		MediaStore:     mediaStore,
	})

	r := api.Router()

	r.Get("/health/mysql", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "mysql ping error: "+err.Error(), 500)
			return
		}
		w.Write([]byte("mysql ok"))
	})

	if cfg.PGDSN != "" {
		r.Get("/health/pg", func(w http.ResponseWriter, req *http.Request) {
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			conn, err := pgx.Connect(ctx, cfg.PGDSN)
			if err != nil {
				http.Error(w, "pg connect error: "+err.Error(), 500)
				return
			}
			defer conn.Close(ctx)
			if err := conn.Ping(ctx); err != nil {
				http.Error(w, "pg ping error: "+err.Error(), 500)
				return
			}
			w.Write([]byte("pg ok"))
		})
	}

	log.Printf("listening on :%s ...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
