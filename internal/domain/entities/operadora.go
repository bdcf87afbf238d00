package entities

// Operadora is a telecom carrier invoices are owed to.
//
// Reference data: the table is seeded once at first boot and only read through
// the API afterwards. DiaFaturamento is the day of month the carrier usually
// bills on, when known.
type Operadora struct {
	ID             int64   `db:"id" json:"id"`
	Nome           string  `db:"nome" json:"nome"`
	Contato        *string `db:"contato" json:"contato,omitempty"`
	Portal         *string `db:"portal" json:"portal,omitempty"`
	DiaFaturamento *int    `db:"dia_faturamento" json:"dia_faturamento,omitempty"`
}
