package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Grade    string `json:"grade"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LogPerformanceRequest records a quiz result. UserID must be the caller.
type LogPerformanceRequest struct {
	UserID   uint   `json:"userId" binding:"required"`
	Score    int    `json:"score" binding:"min=0,max=100"`
	Subject  string `json:"subject" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	QuizType string `json:"quizType" binding:"required"`
	Total    int    `json:"total" binding:"min=0"`
	Correct  int    `json:"correct" binding:"min=0"`
}

type PerformanceLogQuery struct {
	UserID   uint `form:"userId" binding:"required"`
	Page     int  `form:"page"`
	PageSize int  `form:"pageSize"`
}

// GenerateQuestionsRequest is validated by the generation layer so every
// rejection carries the same field/reason shape.
type GenerateQuestionsRequest struct {
	ChapterText string `json:"chapterText"`
	Count       int    `json:"count"`
	Grade       string `json:"grade"`
	Subject     string `json:"subject"`
	StartPage   *int   `json:"startPage"`
	EndPage     *int   `json:"endPage"`
}

type GenerateBatchRequest struct {
	QuestionTypes []string `json:"questionTypes" binding:"required,min=1,dive,required"`
	GenerateQuestionsRequest
}

type GenerateNotesRequest struct {
	ChapterText string `json:"chapterText"`
	Grade       string `json:"grade"`
	Subject     string `json:"subject"`
	StartPage   *int   `json:"startPage"`
	EndPage     *int   `json:"endPage"`
}

type SelectAnswerRequest struct {
	Position *int `json:"position" binding:"required,min=0"`
	Option   *int `json:"option" binding:"required,min=0"`
}
