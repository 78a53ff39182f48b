package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "certnames", Certname{}.TableName())
	assert.Equal(t, "certname_catalogs", CertnameCatalog{}.TableName())
	assert.Equal(t, "catalog_resources", CatalogResource{}.TableName())
	assert.Equal(t, "resource_params", ResourceParam{}.TableName())
	assert.Equal(t, "certname_facts", CertnameFact{}.TableName())
}
