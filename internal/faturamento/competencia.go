package faturamento

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
)

const layoutCompetencia = "2006-01"

// Competencia é o mês civil ao qual um faturamento pertence,
// independente das datas de faturamento e vencimento.
type Competencia struct {
	Ano int
	Mes time.Month
}

func ParseCompetencia(s string) (Competencia, error) {
	t, err := time.Parse(layoutCompetencia, strings.TrimSpace(s))
	if err != nil {
		return Competencia{}, apperr.Validacao("competência inválida %q: use AAAA-MM", s)
	}
	return Competencia{Ano: t.Year(), Mes: t.Month()}, nil
}

func (c Competencia) String() string {
	return time.Date(c.Ano, c.Mes, 1, 0, 0, 0, 0, time.UTC).Format(layoutCompetencia)
}

func (c Competencia) IsZero() bool { return c.Ano == 0 && c.Mes == 0 }

// UltimoDia do mês da competência.
func (c Competencia) UltimoDia() int {
	return time.Date(c.Ano, c.Mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Dia devolve a data do dia informado dentro do mês, limitando ao último
// dia (31 em fevereiro vira 28/29; nunca passa para o mês seguinte).
func (c Competencia) Dia(dia int) time.Time {
	return time.Date(c.Ano, c.Mes, min(dia, c.UltimoDia()), 0, 0, 0, 0, time.UTC)
}

func (c Competencia) Proxima() Competencia {
	t := time.Date(c.Ano, c.Mes+1, 1, 0, 0, 0, 0, time.UTC)
	return Competencia{Ano: t.Year(), Mes: t.Month()}
}

func (c Competencia) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Competencia) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return apperr.Validacao("competência deve ser texto AAAA-MM")
	}
	parsed, err := ParseCompetencia(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
