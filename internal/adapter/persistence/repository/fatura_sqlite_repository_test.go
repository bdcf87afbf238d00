package repository

import (
	"context"
	"testing"
	"time"

	"controle_faturas/internal/domain/entities"
)

var hojeTeste = time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

func criaFatura(t *testing.T, r *FaturaSQLiteRepository, operadoraID int64, referencia string, vencimento time.Time) entities.Fatura {
	t.Helper()
	f, err := r.Create(context.Background(), entities.Fatura{
		OperadoraID: operadoraID,
		Referencia:  referencia,
		Valor:       150.75,
		Vencimento:  vencimento,
		Status:      entities.FaturaStatusPendente,
	})
	if err != nil {
		t.Fatalf("create fatura %s: %v", referencia, err)
	}
	if f.ID == 0 {
		t.Fatalf("create fatura %s: no id", referencia)
	}
	return f
}

func TestFaturaSQLiteRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewFaturaSQLiteRepository(db)

	venc := hojeTeste.AddDate(0, 0, 3)
	created := criaFatura(t, repo, 1, "2026-08", venc)

	got, err := repo.GetByID(context.Background(), created.ID, hojeTeste)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Referencia != "2026-08" || got.Valor != 150.75 || got.OperadoraID != 1 {
		t.Fatalf("unexpected fatura: %+v", got)
	}
	if got.Vencimento.Format("2006-01-02") != "2026-09-02" {
		t.Fatalf("unexpected vencimento: %v", got.Vencimento)
	}
	if got.OperadoraNome != "UNI TELECOM" {
		t.Fatalf("expected joined operadora name, got %q", got.OperadoraNome)
	}
	if got.StatusFatura != entities.StatusDerivadoProximo {
		t.Fatalf("expected proximo, got %s", got.StatusFatura)
	}

	missing, err := repo.GetByID(context.Background(), 9999, hojeTeste)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != 0 {
		t.Fatalf("expected zero fatura for missing id, got %+v", missing)
	}
}

func TestFaturaSQLiteRepository_ListBoundaries(t *testing.T) {
	db := newTestDB(t)
	repo := NewFaturaSQLiteRepository(db)
	ctx := context.Background()

	// One invoice per classification boundary, relative to hojeTeste.
	ontem := criaFatura(t, repo, 1, "ontem", hojeTeste.AddDate(0, 0, -1))
	hoje := criaFatura(t, repo, 1, "hoje", hojeTeste)
	seteDias := criaFatura(t, repo, 2, "sete", hojeTeste.AddDate(0, 0, 7))
	oitoDias := criaFatura(t, repo, 2, "oito", hojeTeste.AddDate(0, 0, 8))
	enviada := criaFatura(t, repo, 3, "enviada", hojeTeste.AddDate(0, 0, -10))
	if _, err := repo.MarkEnviada(ctx, enviada.ID, "financeiro@x.com", nil, hojeTeste); err != nil {
		t.Fatalf("mark enviada: %v", err)
	}

	wantIDs := func(t *testing.T, filtro entities.StatusDerivado, want ...int64) {
		t.Helper()
		list, err := repo.List(ctx, filtro, hojeTeste)
		if err != nil {
			t.Fatalf("list %q: %v", filtro, err)
		}
		if len(list) != len(want) {
			t.Fatalf("list %q: expected %d rows, got %d (%+v)", filtro, len(want), len(list), list)
		}
		for i, id := range want {
			if list[i].ID != id {
				t.Fatalf("list %q row %d: expected id %d, got %d", filtro, i, id, list[i].ID)
			}
		}
	}

	t.Run("all ordered by vencimento", func(t *testing.T) {
		wantIDs(t, "", enviada.ID, ontem.ID, hoje.ID, seteDias.ID, oitoDias.ID)
	})

	t.Run("vencido is strictly before today", func(t *testing.T) {
		wantIDs(t, entities.StatusDerivadoVencido, ontem.ID)
	})

	t.Run("proximo includes both window edges", func(t *testing.T) {
		wantIDs(t, entities.StatusDerivadoProximo, hoje.ID, seteDias.ID)
	})

	t.Run("pendente starts past the window", func(t *testing.T) {
		wantIDs(t, entities.StatusDerivadoPendente, oitoDias.ID)
	})

	t.Run("enviado wins over overdue", func(t *testing.T) {
		wantIDs(t, entities.StatusDerivadoEnviado, enviada.ID)

		list, err := repo.List(ctx, entities.StatusDerivadoEnviado, hojeTeste)
		if err != nil {
			t.Fatalf("list enviado: %v", err)
		}
		if list[0].StatusFatura != entities.StatusDerivadoEnviado {
			t.Fatalf("expected derived enviado, got %s", list[0].StatusFatura)
		}
	})
}

func TestFaturaSQLiteRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewFaturaSQLiteRepository(db)
	ctx := context.Background()

	f := criaFatura(t, repo, 1, "2026-08", hojeTeste.AddDate(0, 0, 5))

	f.OperadoraID = 2
	f.Referencia = "2026-09"
	f.Valor = 220.10
	f.Vencimento = hojeTeste.AddDate(0, 0, 20)

	updated, err := repo.Update(ctx, f, hojeTeste)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.OperadoraID != 2 || updated.Referencia != "2026-09" || updated.Valor != 220.10 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.OperadoraNome != "VOCE TELECOM" {
		t.Fatalf("join not refreshed: %q", updated.OperadoraNome)
	}
	if updated.StatusFatura != entities.StatusDerivadoPendente {
		t.Fatalf("expected pendente after pushing vencimento out, got %s", updated.StatusFatura)
	}

	missing, err := repo.Update(ctx, entities.Fatura{ID: 9999, OperadoraID: 1, Referencia: "x", Valor: 1, Vencimento: hojeTeste}, hojeTeste)
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if missing.ID != 0 {
		t.Fatalf("expected zero fatura for missing id, got %+v", missing)
	}
}

func TestFaturaSQLiteRepository_MarkEnviada(t *testing.T) {
	db := newTestDB(t)
	repo := NewFaturaSQLiteRepository(db)
	ctx := context.Background()

	f := criaFatura(t, repo, 1, "2026-08", hojeTeste.AddDate(0, 0, 2))

	path := "/uploads/abc.pdf"
	sent, err := repo.MarkEnviada(ctx, f.ID, "financeiro@uni.com", &path, hojeTeste)
	if err != nil {
		t.Fatalf("mark enviada: %v", err)
	}
	if sent.Status != entities.FaturaStatusEnviado {
		t.Fatalf("expected stored status enviado, got %s", sent.Status)
	}
	if sent.StatusFatura != entities.StatusDerivadoEnviado {
		t.Fatalf("expected derived enviado, got %s", sent.StatusFatura)
	}
	if sent.EnviadoPara == nil || *sent.EnviadoPara != "financeiro@uni.com" {
		t.Fatalf("unexpected enviado_para: %v", sent.EnviadoPara)
	}
	if sent.ComprovantePath == nil || *sent.ComprovantePath != path {
		t.Fatalf("unexpected comprovante_path: %v", sent.ComprovantePath)
	}
	if sent.DataEnvio == nil || sent.DataEnvio.IsZero() {
		t.Fatalf("expected data_envio to be set")
	}

	missing, err := repo.MarkEnviada(ctx, 9999, "x@y.com", nil, hojeTeste)
	if err != nil {
		t.Fatalf("mark missing: %v", err)
	}
	if missing.ID != 0 {
		t.Fatalf("expected zero fatura for missing id, got %+v", missing)
	}
}

func TestFaturaSQLiteRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewFaturaSQLiteRepository(db)
	ctx := context.Background()

	f := criaFatura(t, repo, 1, "2026-08", hojeTeste)

	deleted, err := repo.Delete(ctx, f.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("expected deletion")
	}

	again, err := repo.Delete(ctx, f.ID)
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if again {
		t.Fatalf("expected no-op on second delete")
	}
}

func TestFaturaSQLiteRepository_Upcoming(t *testing.T) {
	db := newTestDB(t)
	repo := NewFaturaSQLiteRepository(db)
	ctx := context.Background()

	criaFatura(t, repo, 1, "ontem", hojeTeste.AddDate(0, 0, -1))
	hoje := criaFatura(t, repo, 1, "hoje", hojeTeste)
	seteDias := criaFatura(t, repo, 2, "sete", hojeTeste.AddDate(0, 0, 7))
	criaFatura(t, repo, 2, "oito", hojeTeste.AddDate(0, 0, 8))
	enviada := criaFatura(t, repo, 3, "enviada", hojeTeste.AddDate(0, 0, 3))
	if _, err := repo.MarkEnviada(ctx, enviada.ID, "x@y.com", nil, hojeTeste); err != nil {
		t.Fatalf("mark enviada: %v", err)
	}

	list, err := repo.Upcoming(ctx, hojeTeste)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 upcoming faturas, got %d (%+v)", len(list), list)
	}
	if list[0].ID != hoje.ID || list[1].ID != seteDias.ID {
		t.Fatalf("unexpected upcoming set: %+v", list)
	}
}
