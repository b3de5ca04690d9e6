package repository

import (
	"strings"

	"github.com/jobportal/jobportal-go/internal/model"
)

// orderClauses maps each sort key onto an ORDER BY. Ties break on id in the
// same direction, which keeps pages stable and makes z-a the exact reverse of a-z.
var orderClauses = map[string]string{
	model.SortLatest: "created_at DESC, id DESC",
	model.SortOldest: "created_at ASC, id ASC",
	model.SortAZ:     "position ASC, id ASC",
	model.SortZA:     "position DESC, id DESC",
}

// jobFilter is the owner-scoped WHERE clause shared by the count and page queries.
func jobFilter(q model.JobQuery) (string, []any) {
	conds := []string{"created_by = ?"}
	args := []any{q.OwnerID}

	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(q.Status))
	}
	if q.WorkType != "" {
		conds = append(conds, "work_type = ?")
		args = append(args, string(q.WorkType))
	}
	if q.Search != "" {
		conds = append(conds, "LOWER(position) LIKE ? ESCAPE '"+likeEscape+"'")
		args = append(args, likePattern(q.Search))
	}

	return strings.Join(conds, " AND "), args
}

func jobOrder(sort string) string {
	if clause, ok := orderClauses[sort]; ok {
		return clause
	}
	return orderClauses[model.SortLatest]
}

// likeEscape marks a literal wildcard in LIKE patterns. A backslash would
// change meaning under the NO_BACKSLASH_ESCAPES sql_mode.
const likeEscape = "!"

// likePattern builds a case-insensitive substring pattern with LIKE
// metacharacters in the input escaped.
func likePattern(search string) string {
	escaped := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		`%`, likeEscape+`%`,
		`_`, likeEscape+`_`,
	).Replace(strings.ToLower(search))
	return "%" + escaped + "%"
}
