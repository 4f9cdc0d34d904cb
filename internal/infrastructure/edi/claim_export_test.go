package edi

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

func TestWriteBatch(t *testing.T) {
	exporter := NewClaimBatchExporter("MedConnect Hospital")
	claims := []*entity.Claim{
		{
			ID:               "claim-1",
			PatientDisplayID: "PID0001",
			Insurer:          "Acme Health",
			PolicyNumber:     "POL-9",
			ClaimAmount:      decimal.RequireFromString("150.5"),
			DiagnosisCode:    "S52.5",
			Status:           entity.ClaimStatusSubmitted,
			SubmittedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:               "claim-2",
			PatientDisplayID: "PID0002",
			Insurer:          "Acme Health",
			PolicyNumber:     "POL-3",
			ClaimAmount:      decimal.RequireFromString("80"),
			Status:           entity.ClaimStatusApproved,
			SubmittedAt:      time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := exporter.WriteBatch("Acme Health", claims)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.SelectElement("ClaimBatch")
	require.NotNil(t, root)
	assert.Equal(t, "MedConnect Hospital", root.FindElement("Header/Provider").Text())
	assert.Equal(t, "Acme Health", root.FindElement("Header/Insurer").Text())
	assert.Equal(t, "2", root.FindElement("Header/ClaimCount").Text())

	entries := root.FindElements("Claims/Claim")
	require.Len(t, entries, 2)
	assert.Equal(t, "claim-1", entries[0].SelectAttrValue("id", ""))
	assert.Equal(t, "150.50", entries[0].FindElement("Amount").Text(), "amounts carry two decimals")
	assert.Equal(t, "S52.5", entries[0].FindElement("DiagnosisCode").Text())
	assert.Nil(t, entries[1].FindElement("DiagnosisCode"), "empty optional fields are omitted")
}

func TestWriteBatch_Empty(t *testing.T) {
	exporter := NewClaimBatchExporter("MedConnect Hospital")

	data, err := exporter.WriteBatch("Acme Health", nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	assert.Equal(t, "0", doc.FindElement("ClaimBatch/Header/ClaimCount").Text())
	assert.Empty(t, doc.FindElements("ClaimBatch/Claims/Claim"))
}
