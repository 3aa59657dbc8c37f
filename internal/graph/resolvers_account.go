package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

type authPayload struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

func (r *Resolver) meQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	var account models.Account
	if err := r.DB.WithContext(p.Context).First(&account, viewer.AccountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *Resolver) registerMutation(p graphql.ResolveParams) (interface{}, error) {
	name := stringArg(p.Args, "account")
	email := stringArg(p.Args, "email")
	password := stringArg(p.Args, "password")
	peopleName := stringArg(p.Args, "people_name")
	if name == "" || email == "" || password == "" || peopleName == "" {
		return nil, fmt.Errorf("%w: account, email, password and people_name are required", store.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		AccountName: name,
		Email:       email,
		Password:    string(hash),
		PeopleName:  peopleName,
		AccountRole: models.RoleNormal,
		Status:      models.StatusActive,
	}
	if err := r.DB.WithContext(p.Context).Create(&account).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: account or email already in use", store.ErrValidation)
		}
		return nil, err
	}

	token, err := middleware.GenerateToken(account.ID, account.AccountRole)
	if err != nil {
		return nil, err
	}
	return authPayload{Token: token, Account: account}, nil
}

func (r *Resolver) loginMutation(p graphql.ResolveParams) (interface{}, error) {
	name := stringArg(p.Args, "account")
	password := stringArg(p.Args, "password")

	var account models.Account
	err := r.DB.WithContext(p.Context).
		Where("account = ? AND status <> ?", name, models.StatusDeleted).
		First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, store.ErrUnauthenticated
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, store.ErrUnauthenticated
	}

	token, err := middleware.GenerateToken(account.ID, account.AccountRole)
	if err != nil {
		return nil, err
	}
	return authPayload{Token: token, Account: account}, nil
}
