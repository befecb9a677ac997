package services

import (
	"context"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type MemberService struct {
	repos repository.Repositories
}

func NewMemberService(repos repository.Repositories) *MemberService {
	return &MemberService{repos: repos}
}

func (s *MemberService) Register(ctx context.Context, name, email, password, address string) (*domain.Member, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Address:  address,
	}

	err = s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		existing, err := tx.Members().FindByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateEmail
		}
		return tx.Members().Save(member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) GetMember(ctx context.Context, id uint64) (*domain.Member, error) {
	m, err := s.repos.Members().FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMemberNotFound
	}
	return m, nil
}

func (s *MemberService) UpdateAddress(ctx context.Context, memberID uint64, address string) (*domain.Member, error) {
	var member *domain.Member
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		m, err := tx.Members().FindByID(memberID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMemberNotFound
		}
		m.Address = address
		if err := tx.Members().Update(m); err != nil {
			return err
		}
		member = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (s *MemberService) ChangePassword(ctx context.Context, memberID uint64, oldPassword, newPassword string) error {
	return s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		m, err := tx.Members().FindByID(memberID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMemberNotFound
		}
		if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(oldPassword)); err != nil {
			return domain.ErrPasswordMismatch
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		m.Password = string(hash)
		return tx.Members().Update(m)
	})
}
