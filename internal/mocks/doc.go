// Package mocks provides shared mock implementations for testing.
//
// Each mock is a struct with function fields for the methods of the
// interface it stands in for, plus default return values and call tracking:
//
//	svc := &mocks.MockFlashcardService{
//	    UpdateFn: func(ctx context.Context, id, q, a string) (domain.Flashcard, error) {
//	        return domain.Flashcard{ID: id, Question: q, Answer: a}, nil
//	    },
//	}
//
// When adding a mock, name the file after the interface being mocked.
package mocks
