// Package models - Test chính sách xóa của Campaign: chỉ captions cascade,
// các artifact khác (images, videos, scripts) mồ côi lại khi campaign bị xóa.
package models

import (
	"reflect"
	"testing"

	basesvc "adcraft/internal/api/base/service"
	contentmodels "adcraft/internal/api/content/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign_CascadePolicy_CaptionsOnly(t *testing.T) {
	relationships := basesvc.ParseRelationshipTag(reflect.TypeOf(Campaign{}))
	require.Len(t, relationships, 1, "Campaign chỉ khai báo một quan hệ xóa")

	rel := relationships[0]
	assert.Equal(t, "captions", rel.CollectionName)
	assert.Equal(t, "campaignId", rel.FieldName)
	assert.True(t, rel.Cascade, "captions phải cascade khi xóa campaign")
}

func TestArtifacts_NoDeleteRelationships(t *testing.T) {
	// Images, videos, scripts không có tag relationship: khi campaign bị xóa
	// chúng giữ nguyên với campaignId trỏ vào campaign không còn tồn tại.
	for _, model := range []interface{}{
		contentmodels.Image{},
		contentmodels.Video{},
		contentmodels.Script{},
		contentmodels.Caption{},
	} {
		relationships := basesvc.ParseRelationshipTag(reflect.TypeOf(model))
		assert.Empty(t, relationships, "%T không được khai báo quan hệ xóa", model)
	}
}

func TestCampaign_Defaults(t *testing.T) {
	campaignType := reflect.TypeOf(Campaign{})

	userField, ok := campaignType.FieldByName("UserID")
	require.True(t, ok)
	assert.Equal(t, "default_user", userField.Tag.Get("default"))

	statusField, ok := campaignType.FieldByName("PaymentStatus")
	require.True(t, ok)
	assert.Equal(t, PaymentStatusPending, statusField.Tag.Get("default"))
}
