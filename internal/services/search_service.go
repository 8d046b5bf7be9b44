// internal/services/search_service.go
package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

const searchLimit = 10

// staticEntries are the fixed pages and actions the palette always knows
// about. They are filtered locally, never fetched.
var staticEntries = []models.SearchResult{
	{Kind: models.KindPage, Title: "Dashboard", Route: "/"},
	{Kind: models.KindPage, Title: "Tasks", Route: "/tasks"},
	{Kind: models.KindPage, Title: "Projects", Route: "/projects"},
	{Kind: models.KindPage, Title: "Prompts", Route: "/prompts"},
	{Kind: models.KindPage, Title: "Accounts", Route: "/accounts"},
	{Kind: models.KindPage, Title: "Settings", Route: "/settings"},
	{Kind: models.KindAction, Title: "New task", Route: "/tasks/new"},
	{Kind: models.KindAction, Title: "New project", Route: "/projects/new"},
	{Kind: models.KindAction, Title: "New prompt", Route: "/prompts/new"},
	{Kind: models.KindAction, Title: "New account", Route: "/accounts/new"},
}

// SearchService is the command-palette aggregator: one fan-out across
// projects, tasks, prompts and accounts, merged with the locally filtered
// static entries.
type SearchService interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

type searchService struct {
	projects repositories.ProjectRepository
	tasks    repositories.TaskRepository
	prompts  repositories.PromptRepository
	accounts repositories.AccountRepository
}

func NewSearchService(
	projects repositories.ProjectRepository,
	tasks repositories.TaskRepository,
	prompts repositories.PromptRepository,
	accounts repositories.AccountRepository,
) SearchService {
	return &searchService{projects: projects, tasks: tasks, prompts: prompts, accounts: accounts}
}

func (s *searchService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]models.SearchResult(nil), staticEntries...), nil
	}

	var (
		projects []models.Project
		tasks    []models.Task
		prompts  []models.Prompt
		accounts []models.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.projects.Search(gctx, query, searchLimit)
		return
	})
	g.Go(func() (err error) {
		tasks, err = s.tasks.Search(gctx, query, searchLimit)
		return
	})
	g.Go(func() (err error) {
		prompts, err = s.prompts.Search(gctx, query, searchLimit)
		return
	})
	g.Go(func() (err error) {
		accounts, err = s.accounts.Search(gctx, query, searchLimit)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := filterStatic(query)
	for _, p := range projects {
		results = append(results, models.SearchResult{
			Kind: models.KindProject, ID: p.ID, Title: p.Name,
			Subtitle: p.Description, Route: models.RouteFor(models.KindProject, p.ID),
		})
	}
	for _, t := range tasks {
		results = append(results, models.SearchResult{
			Kind: models.KindTask, ID: t.ID, Title: t.Title,
			Subtitle: string(t.Status), Route: models.RouteFor(models.KindTask, t.ID),
		})
	}
	for _, p := range prompts {
		results = append(results, models.SearchResult{
			Kind: models.KindPrompt, ID: p.ID, Title: p.Title,
			Subtitle: p.Category, Route: models.RouteFor(models.KindPrompt, p.ID),
		})
	}
	for _, a := range accounts {
		results = append(results, models.SearchResult{
			Kind: models.KindAccount, ID: a.ID, Title: a.Name,
			Subtitle: a.Username, Route: models.RouteFor(models.KindAccount, a.ID),
		})
	}
	return results, nil
}

func filterStatic(query string) []models.SearchResult {
	q := strings.ToLower(query)
	matched := []models.SearchResult{}
	for _, entry := range staticEntries {
		if strings.Contains(strings.ToLower(entry.Title), q) {
			matched = append(matched, entry)
		}
	}
	return matched
}
