package database

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

const defaultDatabasePath = "./faturas.db"

// Connect opens the sqlite database, runs the schema migration and seeds the
// reference data. Environment variables:
//   - DATABASE_PATH (default: ./faturas.db)
//   - ADMIN_PASSWORD (bootstrap admin password, default: admin123)
func Connect() *sqlx.DB {
	path := getenvDefault("DATABASE_PATH", defaultDatabasePath)

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		log.Fatalf("failed to open database %s: %v", path, err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to reach database %s: %v", path, err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	if err := Seed(db, getenvDefault("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Fatalf("database seed failed: %v", err)
	}
	return db
}

const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    username    TEXT NOT NULL UNIQUE,
    nome        TEXT NOT NULL DEFAULT '',
    senha_hash  TEXT NOT NULL,
    is_admin    BOOLEAN NOT NULL DEFAULT 0,
    criado_em   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS operadoras (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    nome            TEXT NOT NULL UNIQUE,
    contato         TEXT,
    portal          TEXT,
    dia_faturamento INTEGER
);

CREATE TABLE IF NOT EXISTS faturas (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    operadora_id     INTEGER NOT NULL REFERENCES operadoras(id),
    referencia       TEXT NOT NULL,
    valor            REAL NOT NULL,
    vencimento       DATE NOT NULL,
    status           TEXT NOT NULL DEFAULT 'pendente',
    data_envio       DATETIME,
    enviado_para     TEXT,
    comprovante_path TEXT,
    usuario_id       INTEGER REFERENCES usuarios(id),
    criado_em        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_faturas_vencimento ON faturas (vencimento);
CREATE INDEX IF NOT EXISTS idx_faturas_operadora ON faturas (operadora_id);
`

// Migrate creates the schema when absent. Statements are idempotent so this
// runs unconditionally at every boot.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Seed inserts the fixed carrier list and, when no admin account exists yet,
// the bootstrap admin.
func Seed(db *sqlx.DB, adminPassword string) error {
	_, err := db.Exec(`
        INSERT INTO operadoras (nome, contato, portal) VALUES
            ('UNI TELECOM',  '69 3422-3511', 'https://sistema.souuni.com/central_assinante_web/login'),
            ('VOCE TELECOM', '96 9175-4483', 'https://sac.vocetelecom.com.br/'),
            ('OLLA TELECOM', '69 3219-4300', 'https://ixc.ollatelecom.com.br/central_assinante_web/login')
        ON CONFLICT (nome) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed operadoras: %w", err)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM usuarios WHERE username = 'admin'`); err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		_, err = db.Exec(`INSERT INTO usuarios (username, nome, senha_hash, is_admin) VALUES ('admin', 'Administrador', ?, 1)`, string(hash))
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Printf("bootstrap admin user created")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
