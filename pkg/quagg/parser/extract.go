// Package parser extracts questionnaire records from spreadsheet cell grids.
package parser

import (
	"errors"
	"fmt"

	"quagg/pkg/quagg/models"
)

// ErrMalformedLayout indicates header cells were present but the question
// block was entirely absent. Only reported in strict mode.
var ErrMalformedLayout = errors.New("malformed questionnaire layout")

// CellGrid is a read-only view over a sheet's cells, addressable by letter
// column and 1-indexed row. Absent cells read as the empty string.
type CellGrid interface {
	Cell(col string, row int) string
}

// CommentMode selects which historical column-D mapping to emit.
type CommentMode string

const (
	// CommentColumn emits column D as the COMM-Qn comment; column C is the
	// answer, with the "None" literal normalized to empty.
	CommentColumn CommentMode = "comment"
	// CommentFallback uses column D only as a fallback answer for an empty
	// column C; no comment is emitted.
	CommentFallback CommentMode = "fallback"
)

// Options configures extraction behavior.
type Options struct {
	// Comments selects the column-D mapping variant.
	Comments CommentMode
	// StrictLayout reports ErrMalformedLayout when the header row is
	// populated but all question rows are empty.
	StrictLayout bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{Comments: CommentColumn}
}

// Questionnaire layout: row 1 holds the header cells, question rows start
// at row 3, one row per question.
const questionStartRow = 3

// Extract parses a questionnaire cell grid into a Record. The layout is
// fixed: B1/C1/D1 hold application/responsible/deputy, rows 3 through 19
// hold one question per row (B=question, C=answer, D=comment or fallback).
// Missing question rows become empty slots, so Answers always has exactly
// models.NumQuestions entries regardless of the source file's shape.
func Extract(grid CellGrid, sourceLabel string, opts Options) (*models.Record, error) {
	rec := &models.Record{
		SourceLabel: sourceLabel,
		Application: grid.Cell("B", 1),
		Responsible: grid.Cell("C", 1),
		Deputy:      grid.Cell("D", 1),
	}

	populated := 0
	for i := 0; i < models.NumQuestions; i++ {
		row := questionStartRow + i
		question := grid.Cell("B", row)
		answer := grid.Cell("C", row)
		extra := grid.Cell("D", row)
		if question != "" || answer != "" || extra != "" {
			populated++
		}

		slot := models.Answer{Question: question}
		switch opts.Comments {
		case CommentFallback:
			slot.Answer = NormalizeAnswer(answer, extra)
		default:
			slot.Answer = NormalizeAnswer(answer, "")
			slot.Comment = extra
		}
		rec.Answers[i] = slot
	}

	hasHeader := rec.Application != "" || rec.Responsible != "" || rec.Deputy != ""
	if opts.StrictLayout && hasHeader && populated == 0 {
		return nil, fmt.Errorf("%s: question rows %d-%d empty: %w",
			sourceLabel, questionStartRow, questionStartRow+models.NumQuestions-1, ErrMalformedLayout)
	}

	return rec, nil
}
