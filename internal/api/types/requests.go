package types

// RegisterRequest creates an account. Field presence is checked by the
// auth service so its errors match login's.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest issues a token for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VentureRequest creates or fully overwrites a venture.
type VentureRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Stage       string   `json:"stage" validate:"omitempty,oneof=discovery development launch"`
	Status      string   `json:"status"`
	Progress    int      `json:"progress"`
	Valuation   *float64 `json:"valuation"`
	Industry    *string  `json:"industry"`
	IsPublic    bool     `json:"isPublic"`
}

// DocumentRequest creates a document.
type DocumentRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// SignatureRequest signs one of the caller's documents.
type SignatureRequest struct {
	DocumentID    string `json:"documentId" validate:"required,uuid4"`
	SignatureData string `json:"signatureData" validate:"required"`
}
