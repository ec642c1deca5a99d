package persistence

import (
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed != "" && allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Orderable fields per resource. Lists default to newest first.
var (
	TenantSortFields = map[string]bool{
		"created_at": true,
		"name":       true,
		"subdomain":  true,
	}

	UserSortFields = map[string]bool{
		"created_at":    true,
		"username":      true,
		"email":         true,
		"last_login_at": true,
	}

	PropertySortFields = map[string]bool{
		"created_at": true,
		"price":      true,
	}

	ClientSortFields = map[string]bool{
		"created_at": true,
		"name":       true,
	}

	ContractSortFields = map[string]bool{
		"created_at":   true,
		"start_date":   true,
		"end_date":     true,
		"total_amount": true,
	}

	InvoiceSortFields = map[string]bool{
		"created_at":   true,
		"due_date":     true,
		"total_amount": true,
	}
)

// applyOrder orders by a whitelisted column of the current table, breaking
// ties on id so pages are stable.
func applyOrder(query *gorm.DB, filter shared.Filter, allowed map[string]bool) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowed, "created_at")
	desc := ValidateSortOrder(filter.OrderDir) == "DESC"
	return query.
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: field}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: desc})
}

// applySearch adds a case-insensitive substring match over columns. LOWER
// with LIKE behaves the same on PostgreSQL and SQLite.
func applySearch(query *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// applyPage applies offset and limit from a normalized filter
func applyPage(query *gorm.DB, filter shared.Filter) *gorm.DB {
	return query.Offset(filter.Offset()).Limit(filter.PageSize)
}

// stringFilter returns a non-empty string filter value
func stringFilter(filter shared.Filter, key string) (string, bool) {
	v, ok := filter.Filters[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
