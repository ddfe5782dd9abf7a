package repository

import (
	"testing"

	"github.com/taskflow/api/internal/domain/entities"
	"github.com/taskflow/api/internal/ports"
)

func TestBuildListFilter_NoFilters(t *testing.T) {
	t.Parallel()

	where, args := buildListFilter(ports.TaskFilter{})

	if where != "is_deleted = FALSE" {
		t.Errorf("unexpected where clause: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildListFilter_AllFilters(t *testing.T) {
	t.Parallel()

	status := entities.TaskStatusPending
	priority := entities.TaskPriorityHigh
	search := "report"

	where, args := buildListFilter(ports.TaskFilter{
		Status:   &status,
		Priority: &priority,
		Search:   &search,
	})

	want := "is_deleted = FALSE AND status = $1 AND priority = $2 AND (title ILIKE $3 OR description ILIKE $3)"
	if where != want {
		t.Errorf("unexpected where clause:\n got %q\nwant %q", where, want)
	}

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
	if args[0] != status || args[1] != priority {
		t.Errorf("unexpected filter args: %v", args)
	}
	if args[2] != "%report%" {
		t.Errorf("expected wildcarded search term, got %v", args[2])
	}
}

func TestBuildListFilter_SearchOnly(t *testing.T) {
	t.Parallel()

	search := "abc"
	where, args := buildListFilter(ports.TaskFilter{Search: &search})

	want := "is_deleted = FALSE AND (title ILIKE $1 OR description ILIKE $1)"
	if where != want {
		t.Errorf("unexpected where clause: %q", where)
	}
	if len(args) != 1 || args[0] != "%abc%" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildListFilter_EmptySearchIgnored(t *testing.T) {
	t.Parallel()

	search := ""
	where, args := buildListFilter(ports.TaskFilter{Search: &search})

	if where != "is_deleted = FALSE" || len(args) != 0 {
		t.Errorf("empty search must not add a clause: %q %v", where, args)
	}
}
