// Package layout holds the field-layout registry: the static table mapping a
// (file variant, record type) pair to the field offsets that give the record's
// fields their meaning. The same record code can mean different things per
// variant; all "magic index" knowledge lives here and nowhere else.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dmaia/sped-consolidate/internal/models"
	"dmaia/sped-consolidate/internal/parsererror"
)

// Role names the semantic meaning of a field offset within a layout.
type Role string

const (
	RolePeriodStart Role = "period_start"
	RolePeriodEnd   Role = "period_end"
	RoleCompanyName Role = "company_name"
	RoleTaxID       Role = "tax_id"
	RoleState       Role = "state"

	RoleItemCode        Role = "item_code"
	RoleItemDescription Role = "item_description"
	RoleItemUnit        Role = "item_unit"

	RoleTotalDebits  Role = "total_debits"
	RoleTotalCredits Role = "total_credits"

	RolePISValue    Role = "pis_value"
	RoleCOFINSValue Role = "cofins_value"

	RoleDescription Role = "description"
	RoleValue       Role = "value"
)

// Layout describes one record type within one file variant: the 1-indexed
// field offsets (counted after the record code) at which each semantic role
// sits. Offsets are data, not code, so a layout revision is a table change.
type Layout struct {
	Variant    models.FileVariant `yaml:"variant"`
	RecordType models.RecordType  `yaml:"record_type"`
	Offsets    map[Role]int       `yaml:"offsets"`
}

// Offset returns the 0-based slice index for the given role, or -1 when the
// role is not part of this layout.
func (l Layout) Offset(role Role) int {
	off, ok := l.Offsets[role]
	if !ok {
		return -1
	}
	return off - 1
}

// FieldFor resolves the field carrying the given role from a record parsed
// under this layout. Records shorter than the offset yield the empty string.
func (l Layout) FieldFor(rec models.Record, role Role) string {
	idx := l.Offset(role)
	if idx < 0 {
		return ""
	}
	return rec.Field(idx)
}

// Registry is the immutable lookup table for field layouts. It is constructed
// once per session and passed to the components that need it; there is no
// process-wide mutable registry.
type Registry struct {
	layouts map[models.FileVariant]map[models.RecordType]Layout
}

// NewRegistry returns a registry seeded with the built-in layouts for the
// three supported file families, already validated.
func NewRegistry() *Registry {
	r := &Registry{layouts: make(map[models.FileVariant]map[models.RecordType]Layout)}
	for _, l := range seedLayouts() {
		r.put(l)
	}
	return r
}

// NewRegistryFromFile returns the seeded registry extended (or overridden) by
// layouts read from a YAML file. The merged table is validated before use.
func NewRegistryFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading layout overrides: %w", err)
	}

	var overrides struct {
		Layouts []Layout `yaml:"layouts"`
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing layout overrides: %w", err)
	}

	r := NewRegistry()
	for _, l := range overrides.Layouts {
		r.put(l)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) put(l Layout) {
	byType, ok := r.layouts[l.Variant]
	if !ok {
		byType = make(map[models.RecordType]Layout)
		r.layouts[l.Variant] = byType
	}
	byType[l.RecordType] = l
}

// Lookup returns the layout registered for the pair, or an
// UnsupportedLayoutError when none exists.
func (r *Registry) Lookup(variant models.FileVariant, rt models.RecordType) (Layout, error) {
	if byType, ok := r.layouts[variant]; ok {
		if l, ok := byType[rt]; ok {
			return l, nil
		}
	}
	return Layout{}, &parsererror.UnsupportedLayoutError{
		RecordType: string(rt),
		Variant:    string(variant),
	}
}

// HeaderLayout returns the layout of the 0000 header record. The header
// carries the same offsets in every supported variant, so the record parser
// can extract company attributes before the variant is known.
func (r *Registry) HeaderLayout() Layout {
	l, err := r.Lookup(models.VariantECD, models.RecordTypeHeader)
	if err != nil {
		// The seed table always registers a header layout; an empty layout
		// here means a broken override file, which Validate reports.
		return Layout{RecordType: models.RecordTypeHeader, Offsets: headerOffsets()}
	}
	return l
}

// Validate checks every registered layout at startup: the variant must be a
// known one, offsets must be positive, and no two roles within a layout may
// share an offset.
func (r *Registry) Validate() error {
	for variant, byType := range r.layouts {
		if !variant.IsValid() {
			return fmt.Errorf("layout registry: unknown file variant %q", variant)
		}
		for rt, l := range byType {
			seen := make(map[int]Role, len(l.Offsets))
			for role, off := range l.Offsets {
				if off < 1 {
					return fmt.Errorf("layout registry: %s/%s role %q has non-positive offset %d",
						variant, rt, role, off)
				}
				if prev, dup := seen[off]; dup {
					return fmt.Errorf("layout registry: %s/%s roles %q and %q share offset %d",
						variant, rt, prev, role, off)
				}
				seen[off] = role
			}
		}
	}
	return nil
}

// headerOffsets is shared by all variants: the 0000 record carries the filing
// period at fields 2-3, the company name at 5, the tax id at 6 and the state
// at 7 (1-indexed after the record code).
func headerOffsets() map[Role]int {
	return map[Role]int{
		RolePeriodStart: 2,
		RolePeriodEnd:   3,
		RoleCompanyName: 5,
		RoleTaxID:       6,
		RoleState:       7,
	}
}

func seedLayouts() []Layout {
	return []Layout{
		{Variant: models.VariantECD, RecordType: models.RecordTypeHeader, Offsets: headerOffsets()},
		{Variant: models.VariantEFDICMS, RecordType: models.RecordTypeHeader, Offsets: headerOffsets()},
		{Variant: models.VariantEFDContrib, RecordType: models.RecordTypeHeader, Offsets: headerOffsets()},

		// ECD J150: income-statement aggregation rows
		{Variant: models.VariantECD, RecordType: models.RecordTypeIncomeStatement, Offsets: map[Role]int{
			RoleDescription: 5,
			RoleValue:       6,
		}},

		// EFD ICMS/IPI E110: period totals for the ICMS apuration block
		{Variant: models.VariantEFDICMS, RecordType: models.RecordTypeICMSSummary, Offsets: map[Role]int{
			RoleTotalDebits:  1,
			RoleTotalCredits: 5,
		}},

		// Item master, identical in both EFD families
		{Variant: models.VariantEFDICMS, RecordType: models.RecordTypeItem, Offsets: map[Role]int{
			RoleItemCode:        1,
			RoleItemDescription: 2,
			RoleItemUnit:        6,
		}},
		{Variant: models.VariantEFDContrib, RecordType: models.RecordTypeItem, Offsets: map[Role]int{
			RoleItemCode:        1,
			RoleItemDescription: 2,
			RoleItemUnit:        6,
		}},

		// EFD Contribuições C170: VL_PIS and VL_COFINS sit deep in the field
		// list of each document line
		{Variant: models.VariantEFDContrib, RecordType: models.RecordTypeDocumentItem, Offsets: map[Role]int{
			RoleItemCode:    2,
			RolePISValue:    27,
			RoleCOFINSValue: 34,
		}},
	}
}
