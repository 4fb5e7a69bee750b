package clickup

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/clickup-cli/internal/domain"
)

// queryBuilder keeps parameters in insertion order. Array parameters are
// written as repeated "name[]=value" pairs with the brackets left unescaped.
type queryBuilder struct {
	parts []string
}

func (q *queryBuilder) add(name, value string) {
	q.parts = append(q.parts, url.QueryEscape(name)+"="+url.QueryEscape(value))
}

func (q *queryBuilder) addBool(name string, value bool) {
	if value {
		q.add(name, "true")
	}
}

func (q *queryBuilder) addArray(name string, values []string) {
	for _, value := range values {
		q.parts = append(q.parts, url.QueryEscape(name)+"[]="+url.QueryEscape(value))
	}
}

func (q *queryBuilder) encode() string {
	return strings.Join(q.parts, "&")
}

func searchQuery(query string, opts domain.SearchOptions) string {
	var q queryBuilder
	q.add("query", query)
	q.addArray("space_ids", opts.SpaceIDs)
	q.addArray("project_ids", opts.ProjectIDs)
	q.addArray("list_ids", opts.ListIDs)
	q.addArray("statuses", opts.Statuses)

	assignees := make([]string, 0, len(opts.Assignees))
	for _, id := range opts.Assignees {
		assignees = append(assignees, strconv.FormatInt(id, 10))
	}
	q.addArray("assignees", assignees)

	return q.encode()
}

func taskQuery(query domain.TaskQuery) string {
	var q queryBuilder
	q.addBool("archived", query.Archived)
	q.addBool("include_closed", query.IncludeClosed)
	if query.Page != nil {
		q.add("page", strconv.Itoa(*query.Page))
	}
	if query.OrderBy != "" {
		q.add("order_by", query.OrderBy)
	}
	q.addBool("reverse", query.Reverse)
	q.addBool("subtasks", query.Subtasks)
	return q.encode()
}

func listsQuery(opts domain.ListsOptions) string {
	var q queryBuilder
	q.addBool("archived", opts.Archived)
	return q.encode()
}
