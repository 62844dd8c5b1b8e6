package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/internal/dto"
	"github.com/thanha17/online-shop/internal/repository"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
	"github.com/thanha17/online-shop/pkg/errs"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]domain.Product
	order    []primitive.ObjectID
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[primitive.ObjectID]domain.Product{}}
}

func (r *fakeProductRepo) seed(p domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)

	return p
}

func (r *fakeProductRepo) get(id primitive.ObjectID) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.products[id]
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	return r.seed(data).ID, nil
}

func (r *fakeProductRepo) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := (filter.Page - 1) * filter.Limit
	if start >= int64(len(r.order)) {
		return nil, nil
	}
	end := start + filter.Limit
	if end > int64(len(r.order)) {
		end = int64(len(r.order))
	}

	data := make([]domain.Product, 0, end-start)
	for _, id := range r.order[start:end] {
		data = append(data, r.products[id])
	}

	return data, nil
}

func (r *fakeProductRepo) CountProducts(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.order)), nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrProductNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[objectID]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}

	return product, nil
}

func matchesFilter(p domain.Product, filter pkgdto.SearchFilter) bool {
	if filter.Keyword != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Keyword)) {
		return false
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	if filter.PromotionOnly() && p.Promotion < 1 {
		return false
	}

	return true
}

func sortProducts(data []domain.Product, sortBy string) {
	switch sortBy {
	case "priceAsc":
		sort.SliceStable(data, func(i, j int) bool { return data[i].Price < data[j].Price })
	case "priceDesc":
		sort.SliceStable(data, func(i, j int) bool { return data[i].Price > data[j].Price })
	case "views":
		sort.SliceStable(data, func(i, j int) bool { return data[i].Views > data[j].Views })
	case "newest":
		sort.SliceStable(data, func(i, j int) bool { return data[i].CreatedAt > data[j].CreatedAt })
	}
}

func (r *fakeProductRepo) SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) ([]domain.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.Product, 0)
	for _, id := range r.order {
		if matchesFilter(r.products[id], filter) {
			matched = append(matched, r.products[id])
		}
	}
	sortProducts(matched, filter.SortBy)

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *fakeProductRepo) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			data = append(data, p)
		}
	}

	return data, nil
}

func (r *fakeProductRepo) GetProductsByIDsFiltered(ctx context.Context, ids []string, filter pkgdto.SearchFilter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The keyword was already matched by the search index.
	filter.Keyword = ""

	data := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		if p, ok := r.products[objectID]; ok && matchesFilter(p, filter) {
			data = append(data, p)
		}
	}

	return data, nil
}

func (r *fakeProductRepo) GetSimilarProducts(ctx context.Context, category string, excludeID primitive.ObjectID, limit int64) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]domain.Product, 0)
	for _, id := range r.order {
		p := r.products[id]
		if p.Category == category && p.ID != excludeID {
			data = append(data, p)
		}
	}
	sort.SliceStable(data, func(i, j int) bool {
		if data[i].PurchasesCount != data[j].PurchasesCount {
			return data[i].PurchasesCount > data[j].PurchasesCount
		}
		return data[i].Views > data[j].Views
	})

	if int64(len(data)) > limit {
		data = data[:limit]
	}

	return data, nil
}

func (r *fakeProductRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return errs.ErrProductNotFound
	}
	p.Views++
	r.products[id] = p

	return nil
}

func (r *fakeProductRepo) IncrementPurchases(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return errs.ErrProductNotFound
	}
	p.PurchasesCount += quantity
	r.products[id] = p

	return nil
}

func (r *fakeProductRepo) IncrementComments(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return errs.ErrProductNotFound
	}
	p.CommentsCount++
	r.products[id] = p

	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) get(email string) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.users[email]
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.users[email], nil
}

func (r *fakeUserRepo) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data.ID = primitive.NewObjectID()
	r.users[data.Email] = data

	return data.ID, nil
}

func (r *fakeUserRepo) GetUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emails := make([]string, 0, len(r.users))
	for email := range r.users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	data := make([]domain.User, 0, len(emails))
	for _, email := range emails {
		data = append(data, r.users[email])
	}

	return data, nil
}

func (r *fakeUserRepo) AddFavorite(ctx context.Context, email string, productID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return errs.ErrAccountNotFound
	}

	for _, id := range user.Favorites {
		if id == productID {
			return nil
		}
	}
	user.Favorites = append(user.Favorites, productID)
	r.users[email] = user

	return nil
}

func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, email string, productID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return errs.ErrAccountNotFound
	}

	favorites := user.Favorites[:0]
	for _, id := range user.Favorites {
		if id != productID {
			favorites = append(favorites, id)
		}
	}
	user.Favorites = favorites
	r.users[email] = user

	return nil
}

func (r *fakeUserRepo) PushRecentlyViewed(ctx context.Context, email string, productID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return errs.ErrAccountNotFound
	}

	viewed := []primitive.ObjectID{productID}
	for _, id := range user.RecentlyViewed {
		if id != productID {
			viewed = append(viewed, id)
		}
	}
	if len(viewed) > 20 {
		viewed = viewed[:20]
	}
	user.RecentlyViewed = viewed
	r.users[email] = user

	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

var _ repository.CartRepository = (*fakeCartRepo)(nil)

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]domain.Cart{}}
}

func (r *fakeCartRepo) GetCartByEmail(ctx context.Context, email string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[email]
	if !ok {
		return domain.Cart{}, errs.ErrCartNotFound
	}

	return cart, nil
}

func (r *fakeCartRepo) AddCart(ctx context.Context, data domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data.ID = primitive.NewObjectID()
	r.carts[data.UserEmail] = data

	return data, nil
}

func (r *fakeCartRepo) UpdateCartItems(ctx context.Context, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.UserEmail] = cart

	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data.ID = primitive.NewObjectID()
	r.orders = append(r.orders, data)

	return data.ID, nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.orders)
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []domain.Comment
}

var _ repository.CommentRepository = (*fakeCommentRepo)(nil)

func (r *fakeCommentRepo) seed(c domain.Comment) domain.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.comments = append(r.comments, c)

	return c
}

func (r *fakeCommentRepo) AddComment(ctx context.Context, data domain.Comment) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, data)

	return data.ID, nil
}

func (r *fakeCommentRepo) GetCommentsByProductID(ctx context.Context, productID primitive.ObjectID) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if c.ProductID == productID {
			data = append(data, c)
		}
	}
	sort.SliceStable(data, func(i, j int) bool { return data[i].CreatedAt > data[j].CreatedAt })

	return data, nil
}

// fakeSearchRepo stands in for the search index. mirrored is closed-over by the
// fire-and-forget goroutines in the product service, so tests that exercise
// them wait on the channel before asserting.
type fakeSearchRepo struct {
	mu           sync.Mutex
	ids          []string
	total        int64
	searchErr    error
	indexErr     error
	failIDs      map[string]bool
	indexed      []dto.ProductResponse
	viewUpdates  map[string]int64
	ensureCalls  int
	refreshCalls int
	mirrored     chan struct{}
}

var _ repository.ElasticSearchProductRepository = (*fakeSearchRepo)(nil)

func newFakeSearchRepo() *fakeSearchRepo {
	return &fakeSearchRepo{
		failIDs:     map[string]bool{},
		viewUpdates: map[string]int64{},
		mirrored:    make(chan struct{}, 16),
	}
}

func (r *fakeSearchRepo) AddProduct(ctx context.Context, index string, data dto.ProductResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() { r.mirrored <- struct{}{} }()

	if r.indexErr != nil {
		return r.indexErr
	}
	if r.failIDs[data.ID] {
		return errs.ErrInternalServer
	}
	r.indexed = append(r.indexed, data)

	return nil
}

func (r *fakeSearchRepo) UpdateProductViews(ctx context.Context, id string, views int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() { r.mirrored <- struct{}{} }()

	r.viewUpdates[id] = views

	return nil
}

func (r *fakeSearchRepo) SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) ([]string, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ids, r.total, r.searchErr
}

func (r *fakeSearchRepo) EnsureIndex(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureCalls++

	return nil
}

func (r *fakeSearchRepo) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refreshCalls++

	return nil
}

func (r *fakeSearchRepo) indexedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.indexed)
}
