package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wizapp/internal/config"
	"wizapp/internal/handlers"
	"wizapp/internal/model"
	"wizapp/internal/repo"
	"wizapp/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

func newRouterWithRepo(t *testing.T, r repo.ItemRepository, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{ExerciseFile: "testdata/wizexercise.txt"}
	}
	logger := zap.NewNop().Sugar()
	itemSvc := service.NewItemService(r, logger)
	return handlers.NewHandler(itemSvc, logger, cfg).Router
}

func newHandlersTestRouter(t *testing.T) (http.Handler, *hMockItemRepo) {
	t.Helper()
	ir := &hMockItemRepo{}
	return newRouterWithRepo(t, ir, nil), ir
}

// newJSONPost собирает POST /items с телом application/json
func newJSONPost(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
