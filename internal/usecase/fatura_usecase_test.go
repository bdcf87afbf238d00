package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"controle_faturas/internal/domain/entities"
	mock_interfaces "controle_faturas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func faturaDeps(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIFaturaRepository, *mock_interfaces.MockIOperadoraRepository, *mock_interfaces.MockIComprovanteStore, *FaturaUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	faturas := mock_interfaces.NewMockIFaturaRepository(ctrl)
	operadoras := mock_interfaces.NewMockIOperadoraRepository(ctrl)
	store := mock_interfaces.NewMockIComprovanteStore(ctrl)
	return ctrl, faturas, operadoras, store, NewFaturaUseCase(faturas, operadoras, store)
}

func TestFaturaUseCase_Create(t *testing.T) {
	venc := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("missing fields", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CriarFaturaInput{OperadoraID: 1, Referencia: "   ", Valor: 10, Vencimento: venc})
		if !errors.Is(err, ErrCamposObrigatorios) {
			t.Fatalf("expected ErrCamposObrigatorios, got %v", err)
		}
	})

	t.Run("zero vencimento", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CriarFaturaInput{OperadoraID: 1, Referencia: "2026-09", Valor: 10})
		if !errors.Is(err, ErrCamposObrigatorios) {
			t.Fatalf("expected ErrCamposObrigatorios, got %v", err)
		}
	})

	t.Run("non-positive valor", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		for _, valor := range []float64{0, -12.5} {
			_, err := uc.Create(context.Background(), CriarFaturaInput{OperadoraID: 1, Referencia: "2026-09", Valor: valor, Vencimento: venc})
			if !errors.Is(err, ErrValorInvalido) {
				t.Fatalf("valor %v: expected ErrValorInvalido, got %v", valor, err)
			}
		}
	})

	t.Run("unknown operadora", func(t *testing.T) {
		ctrl, _, operadoras, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		operadoras.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Operadora{}, nil)

		_, err := uc.Create(context.Background(), CriarFaturaInput{OperadoraID: 99, Referencia: "2026-09", Valor: 10, Vencimento: venc})
		if !errors.Is(err, ErrOperadoraNaoEncontrada) {
			t.Fatalf("expected ErrOperadoraNaoEncontrada, got %v", err)
		}
	})

	t.Run("success starts pendente with creator", func(t *testing.T) {
		ctrl, faturas, operadoras, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		operadoras.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Operadora{ID: 2, Nome: "VOCE"}, nil)
		faturas.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Fatura{})).DoAndReturn(
			func(_ context.Context, f entities.Fatura) (entities.Fatura, error) {
				if f.Status != entities.FaturaStatusPendente {
					t.Fatalf("expected status pendente, got %s", f.Status)
				}
				if f.Referencia != "2026-09" {
					t.Fatalf("expected trimmed referencia, got %q", f.Referencia)
				}
				if f.UsuarioID == nil || *f.UsuarioID != 5 {
					t.Fatalf("expected creator id 5, got %v", f.UsuarioID)
				}
				f.ID = 10
				return f, nil
			},
		)

		res, err := uc.Create(context.Background(), CriarFaturaInput{OperadoraID: 2, Referencia: " 2026-09 ", Valor: 199.9, Vencimento: venc, UsuarioID: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 10 {
			t.Fatalf("expected persisted id, got %d", res.ID)
		}
	})
}

func TestFaturaUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, faturas, _, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		faturas.EXPECT().GetByID(gomock.Any(), int64(1), gomock.Any()).Return(entities.Fatura{}, nil)

		_, err := uc.GetByID(context.Background(), 1)
		if !errors.Is(err, ErrFaturaNaoEncontrada) {
			t.Fatalf("expected ErrFaturaNaoEncontrada, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, faturas, _, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		faturas.EXPECT().GetByID(gomock.Any(), int64(1), gomock.Any()).Return(entities.Fatura{ID: 1, Referencia: "2026-09"}, nil)

		res, err := uc.GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestFaturaUseCase_List(t *testing.T) {
	t.Run("invalid filter", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), "pago")
		if !errors.Is(err, ErrFiltroInvalido) {
			t.Fatalf("expected ErrFiltroInvalido, got %v", err)
		}
	})

	t.Run("empty filter lists all", func(t *testing.T) {
		ctrl, faturas, _, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		faturas.EXPECT().List(gomock.Any(), entities.StatusDerivado(""), gomock.Any()).Return([]entities.Fatura{{ID: 1}}, nil)

		res, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 fatura, got %d", len(res))
		}
	})

	t.Run("filter passthrough", func(t *testing.T) {
		ctrl, faturas, _, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		faturas.EXPECT().List(gomock.Any(), entities.StatusDerivadoVencido, gomock.Any()).Return(nil, nil)

		if _, err := uc.List(context.Background(), "vencido"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFaturaUseCase_Update(t *testing.T) {
	venc := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		ctrl, faturas, operadoras, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		operadoras.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Operadora{ID: 2}, nil)
		faturas.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Fatura{}, nil)

		_, err := uc.Update(context.Background(), 44, AtualizarFaturaInput{OperadoraID: 2, Referencia: "2026-10", Valor: 80, Vencimento: venc})
		if !errors.Is(err, ErrFaturaNaoEncontrada) {
			t.Fatalf("expected ErrFaturaNaoEncontrada, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, faturas, operadoras, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		operadoras.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Operadora{ID: 2}, nil)
		faturas.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Fatura{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.Fatura, _ time.Time) (entities.Fatura, error) {
				if f.ID != 44 || f.OperadoraID != 2 || f.Valor != 80 {
					t.Fatalf("unexpected update payload: %+v", f)
				}
				return f, nil
			},
		)

		res, err := uc.Update(context.Background(), 44, AtualizarFaturaInput{OperadoraID: 2, Referencia: "2026-10", Valor: 80, Vencimento: venc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 44 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestFaturaUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, faturas, _, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		faturas.EXPECT().GetByID(gomock.Any(), int64(9), gomock.Any()).Return(entities.Fatura{}, nil)

		err := uc.Delete(context.Background(), 9)
		if !errors.Is(err, ErrFaturaNaoEncontrada) {
			t.Fatalf("expected ErrFaturaNaoEncontrada, got %v", err)
		}
	})

	t.Run("removes stored comprovante", func(t *testing.T) {
		ctrl, faturas, _, store, uc := faturaDeps(t)
		defer ctrl.Finish()

		path := "/uploads/abc.pdf"
		faturas.EXPECT().GetByID(gomock.Any(), int64(9), gomock.Any()).Return(entities.Fatura{ID: 9, ComprovantePath: &path}, nil)
		faturas.EXPECT().Delete(gomock.Any(), int64(9)).Return(true, nil)
		store.EXPECT().Remove(path).Return(nil)

		if err := uc.Delete(context.Background(), 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("comprovante removal failure is not fatal", func(t *testing.T) {
		ctrl, faturas, _, store, uc := faturaDeps(t)
		defer ctrl.Finish()

		path := "/uploads/abc.pdf"
		faturas.EXPECT().GetByID(gomock.Any(), int64(9), gomock.Any()).Return(entities.Fatura{ID: 9, ComprovantePath: &path}, nil)
		faturas.EXPECT().Delete(gomock.Any(), int64(9)).Return(true, nil)
		store.EXPECT().Remove(path).Return(errors.New("disk"))

		if err := uc.Delete(context.Background(), 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFaturaUseCase_Enviar(t *testing.T) {
	upload := func(nome, mime string, tamanho int64) *ComprovanteUpload {
		return &ComprovanteUpload{
			NomeOriginal: nome,
			MimeType:     mime,
			Tamanho:      tamanho,
			Conteudo:     strings.NewReader("conteudo"),
		}
	}

	t.Run("missing enviado_para", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.Enviar(context.Background(), 1, "   ", nil)
		if !errors.Is(err, ErrEnviadoParaObrigatorio) {
			t.Fatalf("expected ErrEnviadoParaObrigatorio, got %v", err)
		}
	})

	t.Run("without file", func(t *testing.T) {
		ctrl, faturas, _, _, uc := faturaDeps(t)
		defer ctrl.Finish()

		faturas.EXPECT().MarkEnviada(gomock.Any(), int64(1), "financeiro@uni.com", nil, gomock.Any()).
			Return(entities.Fatura{ID: 1, Status: entities.FaturaStatusEnviado}, nil)

		res, err := uc.Enviar(context.Background(), 1, " financeiro@uni.com ", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.FaturaStatusEnviado {
			t.Fatalf("expected enviado, got %s", res.Status)
		}
	})

	t.Run("rejects bad extension", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.Enviar(context.Background(), 1, "x@y.com", upload("notas.txt", "application/pdf", 100))
		if !errors.Is(err, ErrArquivoInvalido) {
			t.Fatalf("expected ErrArquivoInvalido, got %v", err)
		}
	})

	t.Run("rejects mismatched mime", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.Enviar(context.Background(), 1, "x@y.com", upload("fatura.pdf", "application/zip", 100))
		if !errors.Is(err, ErrArquivoInvalido) {
			t.Fatalf("expected ErrArquivoInvalido, got %v", err)
		}
	})

	t.Run("rejects oversize", func(t *testing.T) {
		uc := NewFaturaUseCase(nil, nil, nil)
		_, err := uc.Enviar(context.Background(), 1, "x@y.com", upload("fatura.pdf", "application/pdf", MaxComprovanteBytes+1))
		if !errors.Is(err, ErrArquivoInvalido) {
			t.Fatalf("expected ErrArquivoInvalido, got %v", err)
		}
	})

	t.Run("accepts mime with charset parameter", func(t *testing.T) {
		ctrl, faturas, _, store, uc := faturaDeps(t)
		defer ctrl.Finish()

		store.EXPECT().Save(gomock.Any(), ".png", gomock.Any()).Return("/uploads/p.png", nil)
		faturas.EXPECT().MarkEnviada(gomock.Any(), int64(1), "x@y.com", gomock.Any(), gomock.Any()).
			Return(entities.Fatura{ID: 1, Status: entities.FaturaStatusEnviado}, nil)

		_, err := uc.Enviar(context.Background(), 1, "x@y.com", upload("Print.PNG", "image/png; charset=binary", 100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stored file is discarded when invoice missing", func(t *testing.T) {
		ctrl, faturas, _, store, uc := faturaDeps(t)
		defer ctrl.Finish()

		store.EXPECT().Save(gomock.Any(), ".pdf", gomock.Any()).Return("/uploads/orfao.pdf", nil)
		faturas.EXPECT().MarkEnviada(gomock.Any(), int64(1), "x@y.com", gomock.Any(), gomock.Any()).
			Return(entities.Fatura{}, nil)
		store.EXPECT().Remove("/uploads/orfao.pdf").Return(nil)

		_, err := uc.Enviar(context.Background(), 1, "x@y.com", upload("fatura.pdf", "application/pdf", 100))
		if !errors.Is(err, ErrFaturaNaoEncontrada) {
			t.Fatalf("expected ErrFaturaNaoEncontrada, got %v", err)
		}
	})

	t.Run("stored file is discarded on repo error", func(t *testing.T) {
		ctrl, faturas, _, store, uc := faturaDeps(t)
		defer ctrl.Finish()

		store.EXPECT().Save(gomock.Any(), ".pdf", gomock.Any()).Return("/uploads/orfao.pdf", nil)
		faturas.EXPECT().MarkEnviada(gomock.Any(), int64(1), "x@y.com", gomock.Any(), gomock.Any()).
			Return(entities.Fatura{}, errors.New("db"))
		store.EXPECT().Remove("/uploads/orfao.pdf").Return(nil)

		_, err := uc.Enviar(context.Background(), 1, "x@y.com", upload("fatura.pdf", "application/pdf", 100))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestValidarComprovante(t *testing.T) {
	cases := []struct {
		name    string
		nome    string
		mime    string
		tamanho int64
		ext     string
		ok      bool
	}{
		{name: "pdf", nome: "fatura.pdf", mime: "application/pdf", tamanho: 1024, ext: ".pdf", ok: true},
		{name: "jpeg upper", nome: "FOTO.JPEG", mime: "image/jpeg", tamanho: 1024, ext: ".jpeg", ok: true},
		{name: "jpg alias mime", nome: "foto.jpg", mime: "image/jpg", tamanho: 1024, ext: ".jpg", ok: true},
		{name: "png", nome: "print.png", mime: "image/png", tamanho: MaxComprovanteBytes, ext: ".png", ok: true},
		{name: "no extension", nome: "fatura", mime: "application/pdf", tamanho: 10, ok: false},
		{name: "txt", nome: "notas.txt", mime: "text/plain", tamanho: 10, ok: false},
		{name: "pdf ext wrong mime", nome: "fatura.pdf", mime: "application/octet-stream", tamanho: 10, ok: false},
		{name: "too big", nome: "fatura.pdf", mime: "application/pdf", tamanho: MaxComprovanteBytes + 1, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ext, err := validarComprovante(&ComprovanteUpload{NomeOriginal: tc.nome, MimeType: tc.mime, Tamanho: tc.tamanho})
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ext != tc.ext {
					t.Fatalf("expected ext %s, got %s", tc.ext, ext)
				}
				return
			}
			if !errors.Is(err, ErrArquivoInvalido) {
				t.Fatalf("expected ErrArquivoInvalido, got %v", err)
			}
		})
	}
}
