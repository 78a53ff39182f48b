// Package schema describes, as gorm models, the tables the compiler's
// generated SQL addresses. It is optional provisioning glue for a host
// that wants to stand up a fresh database — the compiler itself never
// imports this package and never opens a connection; executing SQL is
// explicitly out of scope for the compiler (spec §1).
package schema

import "gorm.io/datatypes"

// Certname is the node-identity table joined in for `["node" "active"]`
// predicates.
type Certname struct {
	Name        string `gorm:"primaryKey;type:varchar(255)"`
	Deactivated *string
}

// CertnameCatalog associates a node with the catalog currently applied to
// it; catalog_resources.catalog joins back to this via USING(catalog).
type CertnameCatalog struct {
	Certname string `gorm:"primaryKey;type:varchar(255)"`
	Catalog  string `gorm:"type:varchar(255);uniqueIndex"`
}

// CatalogResource is one resource (a catalog-applied configuration
// object) row: the compiler's resource-dataset equality/regex predicates
// all ultimately compare a column on this table.
type CatalogResource struct {
	Catalog    string `gorm:"primaryKey;type:varchar(255)"`
	Resource   string `gorm:"primaryKey;type:varchar(255)"`
	Type       string `gorm:"type:varchar(255);index"`
	Title      string `gorm:"type:varchar(255);index"`
	Tags       datatypes.JSON
	Exported   bool
	Sourcefile string `gorm:"type:text"`
	Sourceline int
}

// ResourceParam stores one parameter=value pair for a resource; the
// `["parameter" name]` equality predicate compiles to a subquery against
// this table. Value is stored serialized the same way
// primitives.Backend.Serialize encodes non-string operand values.
type ResourceParam struct {
	Resource string `gorm:"primaryKey;type:varchar(255)"`
	Name     string `gorm:"primaryKey;type:varchar(255)"`
	Value    datatypes.JSON
}

// CertnameFact is one fact observation: certname/name/value, the only
// three columns the fact dataset's selectable-column whitelist names.
type CertnameFact struct {
	Certname string `gorm:"primaryKey;type:varchar(255)"`
	Name     string `gorm:"primaryKey;type:varchar(255)"`
	Value    string `gorm:"type:text"`
}

func (Certname) TableName() string        { return "certnames" }
func (CertnameCatalog) TableName() string { return "certname_catalogs" }
func (CatalogResource) TableName() string { return "catalog_resources" }
func (ResourceParam) TableName() string   { return "resource_params" }
func (CertnameFact) TableName() string    { return "certname_facts" }
