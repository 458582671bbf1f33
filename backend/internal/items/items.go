// Package items implements the item endpoints served by the itemsapi
// Lambda. Items live in a single-table DynamoDB layout under a shared
// partition so they can be listed with one query.
package items

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stackmill/lambdakit/lkdynamo"
	"github.com/stackmill/lambdakit/lkerr"
	"github.com/stackmill/lambdakit/lkhttp"
)

// itemPartition is the partition key shared by all items.
const itemPartition = "item"

// Item is the stored and returned shape of an item.
type Item struct {
	ID    string `json:"id"    dynamodbav:"id"`
	Name  string `json:"name"  dynamodbav:"name"`
	Email string `json:"email" dynamodbav:"email"`
}

// CreateItemRequest is the body accepted by POST /items.
type CreateItemRequest struct {
	ID    string `json:"id"    validate:"required"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Handlers serves item requests against the table store.
type Handlers struct {
	store *lkdynamo.Store
}

func NewHandlers(store *lkdynamo.Store) *Handlers {
	return &Handlers{store: store}
}

// Route dispatches proxy events to the matching handler. The Lambda
// fronts the whole /items resource in proxy mode, so method and resource
// routing happens here rather than in API Gateway.
func (h *Handlers) Route(ctx context.Context, req events.APIGatewayProxyRequest) (lkhttp.Result, error) {
	switch req.HTTPMethod + " " + req.Resource {
	case "POST /items":
		return h.Create(ctx, req)
	case "GET /items":
		return h.List(ctx, req)
	case "GET /items/{id}":
		return h.Get(ctx, req)
	default:
		return lkhttp.Result{}, lkerr.NotFound("no such route")
	}
}

// Create validates the request body and writes a new item. An existing
// item under the same id surfaces as a Conflict error.
func (h *Handlers) Create(ctx context.Context, req events.APIGatewayProxyRequest) (lkhttp.Result, error) {
	body, err := lkhttp.BindJSON[CreateItemRequest](req)
	if err != nil {
		return lkhttp.Result{}, err
	}

	item := Item{ID: body.ID, Name: body.Name, Email: body.Email}
	if err := h.store.Create(ctx, itemPartition, lkdynamo.Key(itemPartition, item.ID), item); err != nil {
		return lkhttp.Result{}, err
	}

	return lkhttp.Result{
		StatusCode: lkhttp.Status(http.StatusCreated),
		Body:       item,
	}, nil
}

// Get loads a single item by its path id.
func (h *Handlers) Get(ctx context.Context, req events.APIGatewayProxyRequest) (lkhttp.Result, error) {
	id := req.PathParameters["id"]
	if id == "" {
		return lkhttp.Result{}, lkerr.Validation("item id is required")
	}

	var item Item
	if err := h.store.Get(ctx, itemPartition, lkdynamo.Key(itemPartition, id), &item); err != nil {
		return lkhttp.Result{}, err
	}
	return lkhttp.Result{Body: item}, nil
}

// List returns all items. The response is always a JSON array, never
// null.
func (h *Handlers) List(ctx context.Context, _ events.APIGatewayProxyRequest) (lkhttp.Result, error) {
	var items []Item
	if err := h.store.List(ctx, itemPartition, &items); err != nil {
		return lkhttp.Result{}, err
	}
	if items == nil {
		items = []Item{}
	}
	return lkhttp.Result{Body: items}, nil
}
