package mapper

import (
	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) EmailVerificationToEntity(v *model.EmailVerification) *entity.EmailVerification {
	if v == nil {
		return nil
	}
	return &entity.EmailVerification{
		Id:        v.Id,
		Email:     v.Email,
		Token:     v.Token,
		ExpiresAt: v.ExpiresAt,
		IsUsed:    v.IsUsed,
		CreatedAt: v.CreatedAt,
	}
}

func (m *UserMapper) EmailVerificationToModel(v *entity.EmailVerification) *model.EmailVerification {
	if v == nil {
		return nil
	}
	return &model.EmailVerification{
		Id:        v.Id,
		Email:     v.Email,
		Token:     v.Token,
		ExpiresAt: v.ExpiresAt,
		IsUsed:    v.IsUsed,
		CreatedAt: v.CreatedAt,
	}
}
