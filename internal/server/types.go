package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

type createGameRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required"`
	ReleaseDate string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Developer   string  `json:"developer" validate:"required"`
}

type createPlayerRequest struct {
	ID            string `json:"id"`
	Username      string `json:"username" validate:"required"`
	Email         string `json:"email" validate:"required"`
	JoinDate      string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Level         int    `json:"level" validate:"gte=0"`
	TotalPlaytime int    `json:"total_playtime" validate:"gte=0"`
}

type purchaseRequest struct {
	GameID       string `json:"game_id" validate:"required"`
	PurchaseDate string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

type rateRequest struct {
	GameID     string  `json:"game_id" validate:"required"`
	Rating     float64 `json:"rating"`
	ReviewText *string `json:"review_text,omitempty"`
}

type friendRequest struct {
	FriendID string `json:"friend_id" validate:"required"`
	Since    string `json:"since" validate:"omitempty,datetime=2006-01-02"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeAndValidate parses the request body into dst and applies the struct
// validation tags.
func decodeAndValidate(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("field %s failed %s validation", first.Field(), first.Tag())
		}
		return err
	}
	return nil
}

// parseDateOrZero converts an optional YYYY-MM-DD value; an empty string
// yields the zero time, which services treat as "default to today".
func parseDateOrZero(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}
