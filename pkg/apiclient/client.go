// Package apiclient is a thin gateway over the shop's REST API: it attaches
// the bearer token obtained at login to every call and unwraps the EC/EM/DT
// response envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken overrides the bearer token; Login sets it automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-zero EC envelope.
type APIError struct {
	EC int
	EM string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (EC=%d): %s", e.EC, e.EM)
}

type envelope struct {
	EC int             `json:"EC"`
	EM string          `json:"EM"`
	DT json.RawMessage `json:"DT"`
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if env.EC != 0 {
		return &APIError{EC: env.EC, EM: env.EM}
	}

	if out != nil && len(env.DT) > 0 {
		if err := json.Unmarshal(env.DT, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	return nil
}

type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Image          string  `json:"image"`
	Promotion      int64   `json:"promotion"`
	Views          int64   `json:"views"`
	PurchasesCount int64   `json:"purchasesCount"`
	CommentsCount  int64   `json:"commentsCount"`
}

type ProductPage struct {
	Data       []Product `json:"data"`
	Total      int64     `json:"total"`
	Page       int64     `json:"page"`
	TotalPages int64     `json:"totalPages"`
}

type ProductDetail struct {
	Product Product   `json:"product"`
	Similar []Product `json:"similar"`
}

type UserIdentity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResult struct {
	AccessToken string       `json:"accessToken"`
	User        UserIdentity `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"id"`
	UserEmail string     `json:"userEmail"`
	Items     []CartItem `json:"items"`
}

type OrderItem struct {
	ProductID       string  `json:"product"`
	Quantity        int64   `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

type Order struct {
	ID          string      `json:"id"`
	UserEmail   string      `json:"userEmail"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

type Comment struct {
	ID        string `json:"id"`
	ProductID string `json:"product"`
	UserEmail string `json:"userEmail"`
	Content   string `json:"content"`
	Rating    int64  `json:"rating"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/v1/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &user)

	return user, err
}

// Login stores the returned access token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/v1/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return result, err
	}

	c.token = result.AccessToken

	return result, nil
}

func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/v1/api/user", nil, &users)

	return users, err
}

func (c *Client) GetAccount(ctx context.Context) (UserIdentity, error) {
	var identity UserIdentity
	err := c.do(ctx, http.MethodGet, "/v1/api/account", nil, &identity)

	return identity, err
}

func (c *Client) GetProducts(ctx context.Context, page, limit int64) (ProductPage, error) {
	var result ProductPage
	path := fmt.Sprintf("/v1/api/products?page=%d&limit=%d", page, limit)
	err := c.do(ctx, http.MethodGet, path, nil, &result)

	return result, err
}

type SearchParams struct {
	Keyword   string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	Promotion bool
	SortBy    string
	Page      int64
	Limit     int64
}

func (c *Client) SearchProducts(ctx context.Context, params SearchParams) (ProductPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.FormatInt(params.Page, 10))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.FormatInt(params.Limit, 10))
	}
	if params.Keyword != "" {
		query.Set("keyword", params.Keyword)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*params.MaxPrice, 'f', -1, 64))
	}
	if params.Promotion {
		query.Set("promotion", "true")
	}
	if params.SortBy != "" {
		query.Set("sortBy", params.SortBy)
	}

	var result ProductPage
	err := c.do(ctx, http.MethodGet, "/v1/api/products/search?"+query.Encode(), nil, &result)

	return result, err
}

func (c *Client) GetProductDetail(ctx context.Context, productID string) (ProductDetail, error) {
	var detail ProductDetail
	err := c.do(ctx, http.MethodGet, "/v1/api/products/"+productID, nil, &detail)

	return detail, err
}

func (c *Client) GetComments(ctx context.Context, productID string) ([]Comment, error) {
	var comments []Comment
	err := c.do(ctx, http.MethodGet, "/v1/api/products/"+productID+"/comments", nil, &comments)

	return comments, err
}

func (c *Client) AddComment(ctx context.Context, productID, content string, rating int64) (Comment, error) {
	var comment Comment
	err := c.do(ctx, http.MethodPost, "/v1/api/products/"+productID+"/comments", map[string]interface{}{
		"content": content,
		"rating":  rating,
	}, &comment)

	return comment, err
}

func (c *Client) GetFavorites(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/v1/api/favorites", nil, &products)

	return products, err
}

func (c *Client) AddFavorite(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodPost, "/v1/api/favorites", map[string]string{"productId": productID}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/api/favorites/"+productID, nil, nil)
}

func (c *Client) GetCart(ctx context.Context) (Cart, error) {
	var cart Cart
	err := c.do(ctx, http.MethodGet, "/v1/api/cart", nil, &cart)

	return cart, err
}

func (c *Client) AddToCart(ctx context.Context, productID string, quantity int64) (Cart, error) {
	var cart Cart
	err := c.do(ctx, http.MethodPost, "/v1/api/cart/items", map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}, &cart)

	return cart, err
}

func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int64) (Cart, error) {
	var cart Cart
	err := c.do(ctx, http.MethodPut, "/v1/api/cart/items", map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}, &cart)

	return cart, err
}

func (c *Client) RemoveCartItem(ctx context.Context, productID string) (Cart, error) {
	var cart Cart
	err := c.do(ctx, http.MethodDelete, "/v1/api/cart/items/"+productID, nil, &cart)

	return cart, err
}

type OrderItemRequest struct {
	ProductID string `json:"product"`
	Quantity  int64  `json:"quantity"`
}

func (c *Client) CreateOrder(ctx context.Context, items []OrderItemRequest) (Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPost, "/v1/api/orders", map[string]interface{}{"items": items}, &order)

	return order, err
}
