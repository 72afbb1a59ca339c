package services

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService resolves the table/branch context behind a cart session
// token. A table scan that differs from the stored table discards the cart —
// the one cross-session consistency rule the storefront has.
type SessionService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
}

func NewSessionService(db *gorm.DB, cr *repository.CartRepository) *SessionService {
	return &SessionService{DB: db, CartRepo: cr}
}

type ResolveIn struct {
	Token    string `json:"token"`
	TableNo  *int   `json:"table"`
	BranchID *uint  `json:"branch"`
}

type ResolveOut struct {
	Cart        *entity.Cart `json:"cart"`
	CartCleared bool         `json:"cartCleared"`
}

func (s *SessionService) Resolve(in *ResolveIn) (*ResolveOut, error) {
	if in.TableNo != nil && *in.TableNo < 0 {
		return nil, errors.New("invalid table number")
	}

	cart, err := s.CartRepo.GetBySessionToken(in.Token)
	if errors.Is(err, gorm.ErrRecordNotFound) || in.Token == "" {
		table := 0
		if in.TableNo != nil {
			table = *in.TableNo
		}
		cart = &entity.Cart{
			SessionToken: uuid.NewString(),
			TableNo:      table,
			BranchID:     in.BranchID,
		}
		if err := s.CartRepo.Create(cart); err != nil {
			return nil, err
		}
		return &ResolveOut{Cart: cart}, nil
	}
	if err != nil {
		return nil, err
	}

	cleared := false
	if in.TableNo != nil && *in.TableNo != cart.TableNo {
		// new physical table scan: the old cart must not follow the customer
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.ClearItems(tx, cart.ID)
		})
		if err != nil {
			return nil, err
		}
		cart.TableNo = *in.TableNo
		cart.Items = nil
		cleared = true
	}
	if in.BranchID != nil {
		cart.BranchID = in.BranchID
	}
	if err := s.CartRepo.Save(cart); err != nil {
		return nil, err
	}
	return &ResolveOut{Cart: cart, CartCleared: cleared}, nil
}

func (s *SessionService) Get(token string) (*entity.Cart, error) {
	return s.CartRepo.GetBySessionToken(token)
}
