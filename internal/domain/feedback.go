package domain

import (
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// AnalyzeRequest asks the feedback function to analyze diary content.
// Without IsReanalyze the function also persists a new entry for TargetDate.
// With IsReanalyze it only returns fresh feedback for DiaryID.
type AnalyzeRequest struct {
	Content     string
	DiaryID     *uuid.UUID
	IsReanalyze bool
	TargetDate  *civil.Date
}

// AnalyzeResult is what the feedback function answers.
type AnalyzeResult struct {
	Feedback string
	Message  string
	// Diary is set when the function persisted a new entry.
	Diary *Diary
}
