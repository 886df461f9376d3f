package handlers

import (
	"encoding/json"
	"strings"

	"mydahanu/directory/internal/domain"
)

const defaultServiceRating = 4.0

// featureList accepts either a JSON array of strings or a single
// comma-separated string.
type featureList []string

func (f *featureList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = trimAll(list)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		*f = featureList{}
		return nil
	}
	*f = trimAll(strings.Split(text, ","))
	return nil
}

func trimAll(in []string) featureList {
	out := make(featureList, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

type createCategoryRequest struct {
	Name          string                     `json:"name"`
	Icon          string                     `json:"icon"`
	Gradient      []string                   `json:"gradient"`
	Subcategories []createSubcategoryRequest `json:"subcategories"`
}

func (req createCategoryRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Icon) == "" {
		return "name and icon are required"
	}
	for _, sub := range req.Subcategories {
		if msg := sub.validate(); msg != "" {
			return msg
		}
	}
	return ""
}

func (req createCategoryRequest) input() domain.CategoryInput {
	in := domain.CategoryInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Gradient: req.Gradient,
	}
	for _, sub := range req.Subcategories {
		in.Subcategories = append(in.Subcategories, sub.input())
	}
	return in
}

func validateCategoryPatch(p domain.CategoryPatch) string {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return "name must not be blank"
	}
	if p.Icon != nil && strings.TrimSpace(*p.Icon) == "" {
		return "icon must not be blank"
	}
	if p.Gradient != nil && len(p.Gradient) == 0 {
		return "gradient must not be empty"
	}
	return ""
}

type createSubcategoryRequest struct {
	Name          string `json:"name"`
	Details       string `json:"details"`
	Image         string `json:"image"`
	ProviderCount int    `json:"providerCount"`
}

func (req createSubcategoryRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Details) == "" {
		return "name and details are required"
	}
	if req.ProviderCount < 0 {
		return "providerCount must not be negative"
	}
	return ""
}

func (req createSubcategoryRequest) input() domain.SubcategoryInput {
	image := req.Image
	if image == "" {
		image = placeholderImage(400, 300)
	}
	return domain.SubcategoryInput{
		Name:          req.Name,
		Details:       req.Details,
		Image:         image,
		ProviderCount: req.ProviderCount,
	}
}

type createServiceRequest struct {
	Name          string      `json:"name"`
	SubcategoryID string      `json:"subcategoryId"`
	Description   string      `json:"description"`
	Image         string      `json:"image"`
	Rating        float64     `json:"rating"`
	Reviews       int         `json:"reviews"`
	Price         string      `json:"price"`
	Location      string      `json:"location"`
	Timing        string      `json:"timing"`
	Phone         string      `json:"phone"`
	Features      featureList `json:"features"`
}

func (req createServiceRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.SubcategoryID) == "" {
		return "name, description and subcategoryId are required"
	}
	if req.Rating < 0 || req.Rating > 5 {
		return "rating must be between 0 and 5"
	}
	if req.Reviews < 0 {
		return "reviews must not be negative"
	}
	return ""
}

func (req createServiceRequest) input() domain.ServiceInput {
	in := domain.ServiceInput{
		Name:          req.Name,
		SubcategoryID: req.SubcategoryID,
		Description:   req.Description,
		Image:         req.Image,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Price:         req.Price,
		Location:      req.Location,
		Timing:        req.Timing,
		Phone:         req.Phone,
		Features:      []string(req.Features),
	}
	if in.Image == "" {
		in.Image = placeholderImage(400, 300)
	}
	// A zero rating means "not given".
	if in.Rating == 0 {
		in.Rating = defaultServiceRating
	}
	if in.Features == nil {
		in.Features = []string{}
	}
	return in
}

type updateServiceRequest struct {
	domain.ServicePatch
	Features *featureList `json:"features,omitempty"`
}

func (req updateServiceRequest) validate() string {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return "name must not be blank"
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return "description must not be blank"
	}
	if req.SubcategoryID != nil && strings.TrimSpace(*req.SubcategoryID) == "" {
		return "subcategoryId must not be blank"
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return "rating must be between 0 and 5"
	}
	if req.Reviews != nil && *req.Reviews < 0 {
		return "reviews must not be negative"
	}
	return ""
}

func (req updateServiceRequest) patch() domain.ServicePatch {
	p := req.ServicePatch
	if req.Features != nil {
		features := []string(*req.Features)
		p.Features = &features
	}
	return p
}

type createBannerRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (req createBannerRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return "title and description are required"
	}
	return ""
}

func (req createBannerRequest) input() domain.BannerInput {
	image := req.Image
	if image == "" {
		image = placeholderImage(400, 200)
	}
	return domain.BannerInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       image,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// importRequest is either a snapshot document or {"url": "..."} naming
// where to fetch one.
type importRequest struct {
	domain.Snapshot
	URL string `json:"url,omitempty"`
}
