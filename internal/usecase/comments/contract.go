package comments

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reeldex/reeldex/internal/domain"
)

// Repository defines the storage contract for comment operations.
type Repository interface {
	TopCommenters(ctx context.Context, limit int64) ([]domain.CommenterRank, error)
	Add(ctx context.Context, c *domain.Comment) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, email, text string, date time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID, email string) error
}
