package entities

import "testing"

func TestDocumentStatusCanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to DocumentStatus
	}{
		{DocumentStatusDraft, DocumentStatusPendingApproval},
		{DocumentStatusPendingApproval, DocumentStatusApprovedSalesman},
		{DocumentStatusApprovedSalesman, DocumentStatusApprovedAdmin},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to DocumentStatus
	}{
		{DocumentStatusDraft, DocumentStatusApprovedSalesman},
		{DocumentStatusDraft, DocumentStatusApprovedAdmin},
		{DocumentStatusPendingApproval, DocumentStatusApprovedAdmin},
		{DocumentStatusPendingApproval, DocumentStatusDraft},
		{DocumentStatusApprovedSalesman, DocumentStatusPendingApproval},
		{DocumentStatusApprovedAdmin, DocumentStatusDraft},
		{DocumentStatusApprovedAdmin, DocumentStatusApprovedAdmin},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s denied", tc.from, tc.to)
		}
	}
}
