package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AutoMigrate only creates foreign keys for associations that declare them,
// so the referential rules of the schema live in these struct tags. This
// pins them: dropping a tag would silently drop the constraint.
func TestModels_DeclareForeignKeys(t *testing.T) {
	tests := []struct {
		model      any
		field      string
		foreignKey string
	}{
		{model: NDAModel{}, field: "Asset", foreignKey: "AssetID"},
		{model: NDAModel{}, field: "Buyer", foreignKey: "BuyerID"},
		{model: TransactionModel{}, field: "Asset", foreignKey: "AssetID"},
		{model: TransactionModel{}, field: "Buyer", foreignKey: "BuyerID"},
		{model: PrivateInvitationModel{}, field: "Asset", foreignKey: "AssetID"},
		{model: PrivateInvitationModel{}, field: "InvitedUser", foreignKey: "InvitedUserID"},
	}

	for _, tt := range tests {
		typ := reflect.TypeOf(tt.model)
		t.Run(typ.Name()+"."+tt.field, func(t *testing.T) {
			field, ok := typ.FieldByName(tt.field)
			require.True(t, ok, "association field missing")

			tag := field.Tag.Get("gorm")
			assert.Contains(t, tag, "foreignKey:"+tt.foreignKey)
			assert.True(t, strings.Contains(tag, "constraint:OnDelete:RESTRICT"),
				"association must declare its constraint, got %q", tag)
		})
	}
}
