package types

import (
	"encoding/json"

	"tokenform/api/internal/filedesc"
)

// OperationCode is the constant returned by the GET status payload.
const OperationCode = 1

// Request — тело POST /bfhl
// required: data (ключи сравниваются с учётом регистра)
type Request struct {
	Data    json.RawMessage `json:"data"`
	FileB64 json.RawMessage `json:"file_b64,omitempty"`
}

// Response — успешный ответ POST /bfhl.
// file_mime_type и file_size_kb равны null, если файл не передан или не декодируется.
type Response struct {
	IsSuccess        bool           `json:"is_success"`
	UserID           string         `json:"user_id"`
	Email            string         `json:"email"`
	RollNumber       string         `json:"roll_number"`
	Numbers          []string       `json:"numbers"`
	Alphabets        []string       `json:"alphabets"`
	HighestLowercase []string       `json:"highest_lowercase_alphabet"`
	FileValid        bool           `json:"file_valid"`
	FileMimeType     *string        `json:"file_mime_type"`
	FileSizeKB       *filedesc.Size `json:"file_size_kb"`
}

// Failure — ответ 400, когда data отсутствует или не массив.
type Failure struct {
	IsSuccess bool   `json:"is_success"`
	UserID    string `json:"user_id"`
}

// Status — ответ GET /bfhl.
type Status struct {
	OperationCode int    `json:"operation_code"`
	IsSuccess     bool   `json:"is_success"`
	UserID        string `json:"user_id"`
}
