package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// YearMonthKey extrai a chave ano-mês "YYYY-MM" de um timestamp ISO-8601.
// Strings mais curtas que sete caracteres são devolvidas como estão, para
// reproduzir fielmente registros malformados no balde resultante.
func YearMonthKey(createdAt string) string {
	if len(createdAt) < 7 {
		return createdAt
	}
	return createdAt[:7]
}

// DateOnlyKey extrai o prefixo de data "YYYY-MM-DD" de um timestamp ISO-8601
func DateOnlyKey(createdAt string) string {
	if len(createdAt) < 10 {
		return createdAt
	}
	return createdAt[:10]
}
