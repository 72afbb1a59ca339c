package services

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/huozturk-art/dr.burgerweb-sub000/builder"
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"
	"github.com/huozturk-art/dr.burgerweb-sub000/utils"

	"gorm.io/gorm"
)

// Notifier pushes order events to the kitchen board. The websocket hub
// implements it; a nil notifier is a no-op.
type Notifier interface {
	OrderCreated(o *entity.Order)
	StatusChanged(o *entity.Order)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	SavedRepo *repository.SavedBurgerRepository
	IngRepo   *repository.IngredientRepository
	Hub       Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	savedRepo *repository.SavedBurgerRepository,
	ingRepo *repository.IngredientRepository,
	hub Notifier,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, SavedRepo: savedRepo, IngRepo: ingRepo, Hub: hub}
}

type CheckoutReq struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes"`
}

type CheckoutRes struct {
	ID      uint    `json:"id"`
	OrderNo string  `json:"orderNo"`
	Total   float64 `json:"total"`
}

// CheckoutFromCart turns the session cart into an order. The header, every
// line, the ingredient snapshots and the cart wipe commit or fail together;
// a half-written order can never reach the kitchen board.
func (s *OrderService) CheckoutFromCart(token string, in *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.CartRepo.GetBySessionToken(token)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	var total float64
	for _, it := range cart.Items {
		total += it.Total
	}

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OrderNo:       utils.NewOrderNumber(utils.OrderPrefixStandard),
			BranchID:      cart.BranchID,
			TableNo:       cart.TableNo,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			Notes:         in.Notes,
			Total:         total,
			Status:        entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			line := entity.OrderLine{
				OrderID:   order.ID,
				Name:      it.Name,
				ProductID: it.ProductID,
				IsCustom:  it.IsCustom,
				Qty:       it.Qty,
				Total:     it.Total,
			}
			if err := s.Repo.CreateOrderLine(tx, &line); err != nil {
				return err
			}
			for _, ing := range it.Ingredients {
				row := entity.OrderIngredient{
					OrderLineID:  line.ID,
					IngredientID: ing.IngredientID,
					Name:         ing.Name,
					Qty:          ing.Qty,
					UnitPrice:    ing.UnitPrice,
				}
				if err := s.Repo.CreateOrderIngredient(tx, &row); err != nil {
					return err
				}
			}
		}

		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return err
		}

		out = CheckoutRes{ID: order.ID, OrderNo: order.OrderNo, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCreated(out.ID)
	return &out, nil
}

type BuilderSubmitIn struct {
	TableNo       int
	BranchID      *uint
	CustomerName  string
	CustomerPhone string
	Notes         string
	BurgerName    string
	SaveFavorite  bool
	Selections    []builder.Selection
}

// CreateFromBuilder writes a one-line custom order from a completed wizard.
// The favorite snapshot is written after the commit: a favorites hiccup must
// not take the order down with it.
func (s *OrderService) CreateFromBuilder(in *BuilderSubmitIn) (*CheckoutRes, error) {
	if len(in.Selections) == 0 {
		return nil, errors.New("no ingredients selected")
	}

	name := in.BurgerName
	if name == "" {
		name = "Özel Burger"
	}

	var total float64
	for _, sel := range in.Selections {
		total += sel.Ingredient.Price * float64(sel.Qty)
	}

	var out CheckoutRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OrderNo:       utils.NewOrderNumber(utils.OrderPrefixCustom),
			BranchID:      in.BranchID,
			TableNo:       in.TableNo,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			Notes:         in.Notes,
			Total:         total,
			Status:        entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		line := entity.OrderLine{
			OrderID:  order.ID,
			Name:     name,
			IsCustom: true,
			Qty:      1,
			Total:    total,
		}
		if err := s.Repo.CreateOrderLine(tx, &line); err != nil {
			return err
		}
		for _, sel := range in.Selections {
			row := entity.OrderIngredient{
				OrderLineID:  line.ID,
				IngredientID: sel.Ingredient.ID,
				Name:         sel.Ingredient.Name,
				Qty:          sel.Qty,
				UnitPrice:    sel.Ingredient.Price,
			}
			if err := s.Repo.CreateOrderIngredient(tx, &row); err != nil {
				return err
			}
		}

		out = CheckoutRes{ID: order.ID, OrderNo: order.OrderNo, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if in.SaveFavorite && in.CustomerPhone != "" {
		if err := s.saveFavorite(name, in.CustomerPhone, total, in.Selections); err != nil {
			log.Printf("save favorite failed: %v", err)
		}
	}

	s.notifyCreated(out.ID)
	return &out, nil
}

func (s *OrderService) saveFavorite(name, phone string, total float64, sels []builder.Selection) error {
	items := make([]builder.SnapshotItem, 0, len(sels))
	for _, sel := range sels {
		items = append(items, builder.SnapshotItem{
			IngredientID: sel.Ingredient.ID,
			Name:         sel.Ingredient.Name,
			Category:     sel.Category,
			Qty:          sel.Qty,
		})
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.SavedRepo.Create(&entity.SavedBurger{
		Phone:       phone,
		Name:        name,
		Ingredients: string(raw),
		Total:       total,
	})
}

// CreateFromSaved is the admin manual flow: re-order a saved design for a
// table. 0 and 99 stand in for phone and takeaway orders. Snapshot entries
// are re-resolved by ingredient id against the live catalog at today's
// prices; entries the catalog no longer has are dropped.
func (s *OrderService) CreateFromSaved(savedID uint, tableNo int, branchID *uint) (*CheckoutRes, error) {
	saved, err := s.SavedRepo.Get(savedID)
	if err != nil {
		return nil, err
	}

	var items []builder.SnapshotItem
	if err := json.Unmarshal([]byte(saved.Ingredients), &items); err != nil {
		return nil, errors.New("saved burger snapshot is corrupt")
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.IngredientID)
	}
	live, err := s.IngRepo.GetIngredientsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.Ingredient, len(live))
	for _, ing := range live {
		byID[ing.ID] = ing
	}

	sels := make([]builder.Selection, 0, len(items))
	for _, it := range items {
		ing, ok := byID[it.IngredientID]
		if !ok {
			continue // catalog drifted; drop silently, same as the wizard
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		sels = append(sels, builder.Selection{Ingredient: ing, Category: it.Category, Qty: qty})
	}
	if len(sels) == 0 {
		return nil, errors.New("no ingredient of this design is still available")
	}

	return s.CreateFromBuilder(&BuilderSubmitIn{
		TableNo:       tableNo,
		BranchID:      branchID,
		CustomerPhone: saved.Phone,
		BurgerName:    saved.Name,
		Selections:    sels,
	})
}

func (s *OrderService) Detail(id uint) (*entity.Order, error) {
	return s.Repo.GetOrderDetail(id)
}

func (s *OrderService) DetailByNo(orderNo string) (*entity.Order, error) {
	return s.Repo.GetOrderByNo(orderNo)
}

func (s *OrderService) notifyCreated(orderID uint) {
	if s.Hub == nil {
		return
	}
	o, err := s.Repo.GetOrderDetail(orderID)
	if err != nil {
		log.Printf("notify order created: %v", err)
		return
	}
	s.Hub.OrderCreated(o)
}
