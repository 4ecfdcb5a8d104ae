package list_categories

import (
	"context"

	"github.com/m04kA/BookingHub/internal/service/catalog/models"
)

type CatalogService interface {
	Categories(ctx context.Context) (*models.CategoriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
