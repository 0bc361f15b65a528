package recebimento

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/faturamento"
	"github.com/KromaEnergia/api-faturamento/internal/utils/testdb"
)

var agoraFixo = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func setupServico(t *testing.T) (*Servico, *gorm.DB) {
	t.Helper()
	database := testdb.Abrir(t, &faturamento.Faturamento{}, &Recebimento{})
	log, _ := test.NewNullLogger()
	s := NewServico(database, log)
	s.Agora = func() time.Time { return agoraFixo }
	return s, database
}

func inserirFaturamento(t *testing.T, database *gorm.DB, contratoID uint) *faturamento.Faturamento {
	t.Helper()
	f := &faturamento.Faturamento{
		EmpresaID:       1,
		ContratoID:      contratoID,
		Competencia:     "2025-06",
		DataFaturamento: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DataVencimento:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		ValorBruto:      decimal.RequireFromString("10000"),
		ValorLiquido:    decimal.RequireFromString("9135"),
		ValorReceber:    decimal.RequireFromString("8135"),
		Status:          faturamento.StatusPendente,
	}
	require.NoError(t, faturamento.NewRepository(database).Inserir(context.Background(), f))
	return f
}

func statusFaturamento(t *testing.T, database *gorm.DB, id uint) string {
	t.Helper()
	f, err := faturamento.NewRepository(database).BuscarPorID(context.Background(), id)
	require.NoError(t, err)
	return f.Status
}

func TestConfirmarFaturamentoCriaRecebimento(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)

	rec, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)

	assert.Equal(t, faturamento.StatusFaturado, statusFaturamento(t, database, f.ID))
	require.NotNil(t, rec.FaturamentoID)
	assert.Equal(t, f.ID, *rec.FaturamentoID)
	assert.Equal(t, StatusPendente, rec.Status)
	assert.Equal(t, "8135.00", rec.Valor.StringFixed(2))
	assert.Equal(t, "2025-07-10", rec.DataVencimento.Format("2006-01-02"))
	assert.Equal(t, "2025-06", rec.Competencia)
	assert.False(t, rec.Avulso)
	assert.Nil(t, rec.DataRecebimento)

	_, err = s.ConfirmarFaturamento(ctx, f.ID)
	assert.True(t, apperr.IsValidacao(err))
}

func TestDesfazerEReconfirmar(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)

	primeiro, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)

	revertido, err := s.DesfazerFaturamento(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, faturamento.StatusPendente, revertido.Status)
	assert.Equal(t, faturamento.StatusPendente, statusFaturamento(t, database, f.ID))

	_, err = s.Buscar(ctx, primeiro.ID)
	assert.True(t, apperr.IsNaoEncontrado(err))

	var n int64
	require.NoError(t, database.Unscoped().Model(&Recebimento{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)

	segundo, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)
	assert.NotZero(t, segundo.ID)
	assert.Equal(t, StatusPendente, segundo.Status)
}

func TestDesfazerFaturamentoPendente(t *testing.T) {
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)

	_, err := s.DesfazerFaturamento(context.Background(), f.ID)
	assert.True(t, apperr.IsValidacao(err))

	_, err = s.DesfazerFaturamento(context.Background(), 404)
	assert.True(t, apperr.IsNaoEncontrado(err))
}

func TestDesfazerFaturamentoBloqueadoQuandoRecebido(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)
	rec, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)
	_, err = s.MarcarRecebido(ctx, rec.ID, nil)
	require.NoError(t, err)

	_, err = s.DesfazerFaturamento(ctx, f.ID)
	assert.True(t, apperr.IsValidacao(err))
	assert.Equal(t, faturamento.StatusFaturado, statusFaturamento(t, database, f.ID))

	err = s.ExcluirFaturamento(ctx, f.ID)
	assert.True(t, apperr.IsValidacao(err))
}

func TestExcluirFaturamentoApagaRecebimento(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)
	rec, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)

	require.NoError(t, s.ExcluirFaturamento(ctx, f.ID))

	_, err = s.Buscar(ctx, rec.ID)
	assert.True(t, apperr.IsNaoEncontrado(err))
	_, err = faturamento.NewRepository(database).BuscarPorID(ctx, f.ID)
	assert.True(t, apperr.IsNaoEncontrado(err))

	// a competência fica livre para um novo faturamento
	novo := inserirFaturamento(t, database, 10)
	assert.NotEqual(t, f.ID, novo.ID)
}

func TestMarcarEDesfazerRecebido(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)
	rec, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)

	recebido, err := s.MarcarRecebido(ctx, rec.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusRecebido, recebido.Status)
	require.NotNil(t, recebido.DataRecebimento)
	assert.True(t, agoraFixo.Equal(*recebido.DataRecebimento))

	_, err = s.MarcarRecebido(ctx, rec.ID, nil)
	assert.True(t, apperr.IsValidacao(err))

	desfeito, err := s.DesfazerRecebimento(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPendente, desfeito.Status)
	assert.Nil(t, desfeito.DataRecebimento)

	_, err = s.DesfazerRecebimento(ctx, rec.ID)
	assert.True(t, apperr.IsValidacao(err))
}

func TestMarcarRecebidoComDataInformada(t *testing.T) {
	ctx := context.Background()
	s, _ := setupServico(t)
	rec, err := s.CriarAvulso(ctx, NovoAvulso{
		EmpresaID:      1,
		Descricao:      "Reembolso de uniformes",
		Valor:          decimal.RequireFromString("350.40"),
		DataVencimento: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	data := time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)
	recebido, err := s.MarcarRecebido(ctx, rec.ID, &data)
	require.NoError(t, err)
	require.NotNil(t, recebido.DataRecebimento)
	assert.Equal(t, "2025-06-28", recebido.DataRecebimento.Format("2006-01-02"))
}

func TestCriarAvulso(t *testing.T) {
	ctx := context.Background()
	s, _ := setupServico(t)
	venc := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)

	rec, err := s.CriarAvulso(ctx, NovoAvulso{EmpresaID: 1, Descricao: "Multa contratual", Valor: decimal.RequireFromString("99.999"), DataVencimento: venc})
	require.NoError(t, err)
	assert.True(t, rec.Avulso)
	assert.Nil(t, rec.FaturamentoID)
	assert.Equal(t, "2025-08", rec.Competencia)
	assert.Equal(t, "100.00", rec.Valor.StringFixed(2))

	cases := []struct {
		nome string
		in   NovoAvulso
	}{
		{"sem descricao", NovoAvulso{EmpresaID: 1, Valor: decimal.NewFromInt(10), DataVencimento: venc}},
		{"valor zero", NovoAvulso{EmpresaID: 1, Descricao: "x", DataVencimento: venc}},
		{"valor negativo", NovoAvulso{EmpresaID: 1, Descricao: "x", Valor: decimal.NewFromInt(-5), DataVencimento: venc}},
		{"sem vencimento", NovoAvulso{EmpresaID: 1, Descricao: "x", Valor: decimal.NewFromInt(10)}},
		{"sem empresa", NovoAvulso{Descricao: "x", Valor: decimal.NewFromInt(10), DataVencimento: venc}},
		{"competencia invalida", NovoAvulso{EmpresaID: 1, Descricao: "x", Valor: decimal.NewFromInt(10), DataVencimento: venc, Competencia: "08/2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := s.CriarAvulso(ctx, tc.in)
			assert.True(t, apperr.IsValidacao(err))
		})
	}
}

func TestExcluirSoAvulso(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)
	vinculado, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)

	err = s.ExcluirAvulso(ctx, vinculado.ID)
	assert.True(t, apperr.IsValidacao(err))

	avulso, err := s.CriarAvulso(ctx, NovoAvulso{EmpresaID: 1, Descricao: "Ajuste", Valor: decimal.NewFromInt(10), DataVencimento: agoraFixo})
	require.NoError(t, err)
	require.NoError(t, s.ExcluirAvulso(ctx, avulso.ID))

	list, err := s.Listar(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, vinculado.ID, list[0].ID)

	_, err = s.Listar(ctx, 1, "Pago")
	assert.True(t, apperr.IsValidacao(err))
}

func TestIndiceUnicoPorFaturamento(t *testing.T) {
	ctx := context.Background()
	s, database := setupServico(t)
	f := inserirFaturamento(t, database, 10)
	_, err := s.ConfirmarFaturamento(ctx, f.ID)
	require.NoError(t, err)

	fatID := f.ID
	err = s.Repo.Inserir(ctx, &Recebimento{EmpresaID: 1, FaturamentoID: &fatID, DataVencimento: agoraFixo, Valor: decimal.NewFromInt(1), Status: StatusPendente})
	assert.True(t, apperr.IsDuplicado(err))

	// avulsos sem faturamento não colidem entre si
	for i := 0; i < 2; i++ {
		_, err := s.CriarAvulso(ctx, NovoAvulso{EmpresaID: 1, Descricao: "Avulso", Valor: decimal.NewFromInt(1), DataVencimento: agoraFixo})
		require.NoError(t, err)
	}
}
