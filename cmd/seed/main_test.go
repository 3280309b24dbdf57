package main

import (
	"context"
	"testing"

	"gamegraph/internal/domain"
	"gamegraph/internal/graph"
	"gamegraph/internal/repository"
)

func TestEnsureDeveloperSkipsExisting(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"name": "CD Projekt RED", "founded_year": int64(2002), "country": "Poland", "employees": int64(1100)},
	}})
	developers := repository.NewDeveloperRepository(mem, nil)

	created, err := ensureDeveloper(context.Background(), developers, domain.Developer{
		Name: "CD Projekt RED", FoundedYear: 2002, Country: "Poland", Employees: 1100,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created {
		t.Error("expected existing developer to be skipped")
	}
	if writes := mem.WriteCalls(); len(writes) != 0 {
		t.Errorf("expected no write for existing developer, got %d", len(writes))
	}
}

func TestEnsureDeveloperCreatesMissing(t *testing.T) {
	mem := graph.NewMemoryClient()
	developers := repository.NewDeveloperRepository(mem, nil)

	created, err := ensureDeveloper(context.Background(), developers, domain.Developer{
		Name: "Valve Corporation", FoundedYear: 1996, Country: "USA", Employees: 360,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !created {
		t.Error("expected missing developer to be created")
	}

	writes := mem.WriteCalls()
	if len(writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writes))
	}
	if writes[0].Params["name"] != "Valve Corporation" {
		t.Errorf("expected name param, got %v", writes[0].Params["name"])
	}
}

func TestSeedCatalogSkipsExisting(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"name": "RPG"},
		{"name": "Action"},
		{"name": "Sandbox"},
		{"name": "Puzzle"},
	}})
	mem.PushReadResult(graph.Result{Records: []graph.Record{
		{"name": "PC"},
		{"name": "PlayStation 5"},
		{"name": "Xbox Series X"},
		{"name": "Nintendo Switch"},
	}})
	genres := repository.NewGenreRepository(mem, nil)
	platforms := repository.NewPlatformRepository(mem, nil)

	if err := seedCatalog(context.Background(), genres, platforms); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if writes := mem.WriteCalls(); len(writes) != 0 {
		t.Errorf("expected no writes on a fully seeded catalog, got %d", len(writes))
	}
}
