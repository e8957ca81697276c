package contract

import (
	"context"

	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CreateEmailVerification(ctx context.Context, verification *entity.EmailVerification) error
}
