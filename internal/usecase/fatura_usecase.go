package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase/interfaces"
)

var (
	ErrFaturaNaoEncontrada    = errors.New("fatura not found")
	ErrOperadoraNaoEncontrada = errors.New("operadora not found")
	ErrCamposObrigatorios     = errors.New("missing required fields")
	ErrValorInvalido          = errors.New("invalid valor")
	ErrFiltroInvalido         = errors.New("invalid status filter")
	ErrEnviadoParaObrigatorio = errors.New("enviado_para is required")
	ErrArquivoInvalido        = errors.New("invalid proof file")
)

// MaxComprovanteBytes caps proof-of-payment uploads at 5 MiB.
const MaxComprovanteBytes = 5 << 20

// Upload policy: a file is accepted only when BOTH the declared content type
// and the original extension are on these lists.
var (
	extensoesPermitidas = map[string]bool{".pdf": true, ".jpg": true, ".jpeg": true, ".png": true}
	mimesPermitidos     = map[string]bool{"application/pdf": true, "image/jpeg": true, "image/jpg": true, "image/png": true}
)

type CriarFaturaInput struct {
	OperadoraID int64
	Referencia  string
	Valor       float64
	Vencimento  time.Time
	UsuarioID   int64
}

type AtualizarFaturaInput struct {
	OperadoraID int64
	Referencia  string
	Valor       float64
	Vencimento  time.Time
}

// ComprovanteUpload carries an uploaded proof file into the send transition.
// Tamanho is the declared size; the HTTP layer also hard-caps the body.
type ComprovanteUpload struct {
	NomeOriginal string
	MimeType     string
	Tamanho      int64
	Conteudo     io.Reader
}

// IFaturaUseCase exposes invoice operations: CRUD, the send transition and
// the due-soon notification window.

type IFaturaUseCase interface {
	Create(ctx context.Context, in CriarFaturaInput) (entities.Fatura, error)
	GetByID(ctx context.Context, id int64) (entities.Fatura, error)
	List(ctx context.Context, filtro string) ([]entities.Fatura, error)
	Update(ctx context.Context, id int64, in AtualizarFaturaInput) (entities.Fatura, error)
	Delete(ctx context.Context, id int64) error
	Enviar(ctx context.Context, id int64, enviadoPara string, arquivo *ComprovanteUpload) (entities.Fatura, error)
	Upcoming(ctx context.Context) ([]entities.Fatura, error)
}

type FaturaUseCase struct {
	faturas      interfaces.IFaturaRepository
	operadoras   interfaces.IOperadoraRepository
	comprovantes interfaces.IComprovanteStore
}

var _ IFaturaUseCase = (*FaturaUseCase)(nil)

func NewFaturaUseCase(faturas interfaces.IFaturaRepository, operadoras interfaces.IOperadoraRepository, comprovantes interfaces.IComprovanteStore) *FaturaUseCase {
	return &FaturaUseCase{faturas: faturas, operadoras: operadoras, comprovantes: comprovantes}
}

func (u *FaturaUseCase) Create(ctx context.Context, in CriarFaturaInput) (entities.Fatura, error) {
	in.Referencia = strings.TrimSpace(in.Referencia)
	if in.OperadoraID == 0 || in.Referencia == "" || in.Vencimento.IsZero() {
		return entities.Fatura{}, ErrCamposObrigatorios
	}
	if in.Valor <= 0 {
		return entities.Fatura{}, ErrValorInvalido
	}

	op, err := u.operadoras.GetByID(ctx, in.OperadoraID)
	if err != nil {
		return entities.Fatura{}, err
	}
	if op.ID == 0 {
		return entities.Fatura{}, ErrOperadoraNaoEncontrada
	}

	f := entities.Fatura{
		OperadoraID: in.OperadoraID,
		Referencia:  in.Referencia,
		Valor:       in.Valor,
		Vencimento:  in.Vencimento,
		Status:      entities.FaturaStatusPendente,
		UsuarioID:   &in.UsuarioID,
	}
	return u.faturas.Create(ctx, f)
}

func (u *FaturaUseCase) GetByID(ctx context.Context, id int64) (entities.Fatura, error) {
	f, err := u.faturas.GetByID(ctx, id, time.Now())
	if err != nil {
		return entities.Fatura{}, err
	}
	if f.ID == 0 {
		return entities.Fatura{}, ErrFaturaNaoEncontrada
	}
	return f, nil
}

func (u *FaturaUseCase) List(ctx context.Context, filtro string) ([]entities.Fatura, error) {
	var status entities.StatusDerivado
	if filtro != "" {
		parsed, ok := entities.ParseStatusDerivado(filtro)
		if !ok {
			return nil, ErrFiltroInvalido
		}
		status = parsed
	}
	return u.faturas.List(ctx, status, time.Now())
}

func (u *FaturaUseCase) Update(ctx context.Context, id int64, in AtualizarFaturaInput) (entities.Fatura, error) {
	in.Referencia = strings.TrimSpace(in.Referencia)
	if in.OperadoraID == 0 || in.Referencia == "" || in.Vencimento.IsZero() {
		return entities.Fatura{}, ErrCamposObrigatorios
	}
	if in.Valor <= 0 {
		return entities.Fatura{}, ErrValorInvalido
	}

	op, err := u.operadoras.GetByID(ctx, in.OperadoraID)
	if err != nil {
		return entities.Fatura{}, err
	}
	if op.ID == 0 {
		return entities.Fatura{}, ErrOperadoraNaoEncontrada
	}

	f := entities.Fatura{
		ID:          id,
		OperadoraID: in.OperadoraID,
		Referencia:  in.Referencia,
		Valor:       in.Valor,
		Vencimento:  in.Vencimento,
	}
	updated, err := u.faturas.Update(ctx, f, time.Now())
	if err != nil {
		return entities.Fatura{}, err
	}
	if updated.ID == 0 {
		return entities.Fatura{}, ErrFaturaNaoEncontrada
	}
	return updated, nil
}

// Delete removes the invoice and, best-effort, its stored proof file. A proof
// removal failure is logged and does not undo the row deletion.
func (u *FaturaUseCase) Delete(ctx context.Context, id int64) error {
	f, err := u.faturas.GetByID(ctx, id, time.Now())
	if err != nil {
		return err
	}
	if f.ID == 0 {
		return ErrFaturaNaoEncontrada
	}

	deleted, err := u.faturas.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFaturaNaoEncontrada
	}

	if f.ComprovantePath != nil {
		if err := u.comprovantes.Remove(*f.ComprovantePath); err != nil {
			log.Printf("fatura %d removed but comprovante %s was not: %v", id, *f.ComprovantePath, err)
		}
	}
	return nil
}

// Enviar marks the invoice as sent, optionally storing a proof file. When the
// invoice turns out not to exist, a file already written for this request is
// removed again so failures leave no orphans.
func (u *FaturaUseCase) Enviar(ctx context.Context, id int64, enviadoPara string, arquivo *ComprovanteUpload) (entities.Fatura, error) {
	enviadoPara = strings.TrimSpace(enviadoPara)
	if enviadoPara == "" {
		return entities.Fatura{}, ErrEnviadoParaObrigatorio
	}

	var comprovantePath *string
	if arquivo != nil {
		ext, err := validarComprovante(arquivo)
		if err != nil {
			return entities.Fatura{}, err
		}
		path, err := u.comprovantes.Save(ctx, ext, io.LimitReader(arquivo.Conteudo, MaxComprovanteBytes))
		if err != nil {
			return entities.Fatura{}, err
		}
		comprovantePath = &path
	}

	f, err := u.faturas.MarkEnviada(ctx, id, enviadoPara, comprovantePath, time.Now())
	if err != nil {
		u.discardComprovante(comprovantePath)
		return entities.Fatura{}, err
	}
	if f.ID == 0 {
		u.discardComprovante(comprovantePath)
		return entities.Fatura{}, ErrFaturaNaoEncontrada
	}
	return f, nil
}

func (u *FaturaUseCase) Upcoming(ctx context.Context) ([]entities.Fatura, error) {
	return u.faturas.Upcoming(ctx, time.Now())
}

func (u *FaturaUseCase) discardComprovante(path *string) {
	if path == nil {
		return
	}
	if err := u.comprovantes.Remove(*path); err != nil {
		log.Printf("failed to discard orphan comprovante %s: %v", *path, err)
	}
}

// validarComprovante applies the upload policy and returns the normalized
// extension to store under.
func validarComprovante(a *ComprovanteUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(a.NomeOriginal))
	if !extensoesPermitidas[ext] {
		return "", ErrArquivoInvalido
	}
	mime := strings.ToLower(strings.TrimSpace(a.MimeType))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !mimesPermitidos[mime] {
		return "", ErrArquivoInvalido
	}
	if a.Tamanho > MaxComprovanteBytes {
		return "", ErrArquivoInvalido
	}
	return ext, nil
}
