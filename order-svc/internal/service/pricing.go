package service

import (
	"fmt"
	"strings"

	"cardapio/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type LineDraft struct {
	MenuItemID  string            `json:"menu_item_id"`
	Quantity    int               `json:"quantity"`
	Selections  []GroupSelection  `json:"selections,omitempty"`
	Combination *CombinationDraft `json:"combination,omitempty"`
}

type GroupSelection struct {
	GroupID    string          `json:"group_id"`
	Variations []VariationPick `json:"variations"`
}

type VariationPick struct {
	VariationID string `json:"variation_id"`
	Quantity    int    `json:"quantity"`
}

type CombinationDraft struct {
	Flavor1ID string           `json:"flavor1_id"`
	Flavor2ID string           `json:"flavor2_id"`
	Size      domain.PizzaSize `json:"size"`
}

type Quote struct {
	Items []domain.OrderLineItem `json:"items"`
	Total decimal.Decimal        `json:"total"`
}

// PricingEngine prices cart lines against one catalog snapshot.
type PricingEngine struct {
	items      map[string]domain.MenuItem
	groups     map[string]domain.VariationGroup
	variations map[string]domain.Variation
}

func NewPricingEngine(catalog domain.Catalog) *PricingEngine {
	p := &PricingEngine{
		items:      make(map[string]domain.MenuItem, len(catalog.MenuItems)),
		groups:     make(map[string]domain.VariationGroup, len(catalog.VariationGroups)),
		variations: make(map[string]domain.Variation, len(catalog.Variations)),
	}
	for _, item := range catalog.MenuItems {
		p.items[item.ID] = item
	}
	for _, group := range catalog.VariationGroups {
		p.groups[group.ID] = group
	}
	for _, variation := range catalog.Variations {
		p.variations[variation.ID] = variation
	}
	return p
}

// LineSubtotal computes the billed amount of an already snapshotted line.
func (p *PricingEngine) LineSubtotal(line domain.OrderLineItem) (decimal.Decimal, error) {
	if line.Quantity < 1 {
		return decimal.Zero, newValidationError("quantity", "must be at least 1")
	}
	qty := decimal.NewFromInt(int64(line.Quantity))

	if line.IsHalfPizza {
		unit, err := p.combinationPrice(line.Combination)
		if err != nil {
			return decimal.Zero, err
		}
		return unit.Mul(qty).Round(2), nil
	}

	base := line.Price
	if line.PriceFrom {
		base = decimal.Zero
	}
	addOn := decimal.Zero
	for _, group := range line.SelectedVariations {
		for _, v := range group.Variations {
			addOn = addOn.Add(v.Price.Mul(decimal.NewFromInt(int64(v.Quantity))))
		}
	}
	return base.Add(addOn).Mul(qty).Round(2), nil
}

func (p *PricingEngine) CartTotal(lines []domain.OrderLineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, line := range lines {
		subtotal, err := p.LineSubtotal(line)
		if err != nil {
			return decimal.Zero, fmt.Errorf("item %d: %w", i, err)
		}
		total = total.Add(subtotal)
	}
	return total, nil
}

// combinationPrice charges the costlier of the two flavors at the chosen size.
func (p *PricingEngine) combinationPrice(c *domain.Combination) (decimal.Decimal, error) {
	if c == nil {
		return decimal.Zero, newValidationError("combination", "half pizza requires two flavors")
	}
	if !c.Size.Valid() {
		return decimal.Zero, newValidationError("combination.size", "unknown size %q", c.Size)
	}
	first, ok := p.items[c.Flavor1ID]
	if !ok {
		return decimal.Zero, newValidationError("combination.flavor1_id", "unknown flavor %q", c.Flavor1ID)
	}
	second, ok := p.items[c.Flavor2ID]
	if !ok {
		return decimal.Zero, newValidationError("combination.flavor2_id", "unknown flavor %q", c.Flavor2ID)
	}
	return decimal.Max(p.flavorPrice(first, c.Size), p.flavorPrice(second, c.Size)), nil
}

// flavorPrice looks for an available variation named after the size among
// the flavor's groups and falls back to the flavor's base price.
func (p *PricingEngine) flavorPrice(item domain.MenuItem, size domain.PizzaSize) decimal.Decimal {
	for _, groupID := range item.VariationGroupIDs {
		group, ok := p.groups[groupID]
		if !ok {
			continue
		}
		for _, variationID := range group.VariationIDs {
			v, ok := p.variations[variationID]
			if !ok || !v.Available {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(v.Name), string(size)) && v.AdditionalPrice.IsPositive() {
				return v.AdditionalPrice
			}
		}
	}
	return item.Price
}

// ValidateSelections is the add-to-cart gate: every group attached to the
// item must exist and have a selected quantity within its bounds.
func (p *PricingEngine) ValidateSelections(item domain.MenuItem, selected []domain.SelectedVariationGroup) error {
	// counts saturate at MaxAllowed+1 so large quantities cannot wrap.
	counts := make(map[string]int, len(selected))
	for _, group := range selected {
		limit := p.groups[group.GroupID].MaxAllowed
		for _, v := range group.Variations {
			if v.Quantity < 1 {
				return newValidationError("selections."+group.GroupID, "variation quantity must be at least 1")
			}
			if v.Quantity > limit-counts[group.GroupID] {
				counts[group.GroupID] = limit + 1
				break
			}
			counts[group.GroupID] += v.Quantity
		}
	}

	for _, groupID := range item.VariationGroupIDs {
		group, ok := p.groups[groupID]
		if !ok {
			return newValidationError("selections."+groupID, "variation group is not available for %s", item.Name)
		}
		total := counts[groupID]
		if total < group.MinRequired || total > group.MaxAllowed {
			return groupBoundsError(group)
		}
	}
	return nil
}

func groupBoundsError(group domain.VariationGroup) *ValidationError {
	msg := fmt.Sprintf("select between %d and %d options in %s", group.MinRequired, group.MaxAllowed, group.Name)
	if group.CustomMessage != "" {
		msg = renderGroupMessage(group.CustomMessage, group.MinRequired, group.MaxAllowed)
	}
	return &ValidationError{Field: "selections." + group.ID, Message: msg}
}

// Quote resolves drafts into priced line snapshots.
func (p *PricingEngine) Quote(drafts []LineDraft) (Quote, error) {
	quote := Quote{Items: make([]domain.OrderLineItem, 0, len(drafts)), Total: decimal.Zero}
	for i, draft := range drafts {
		line, err := p.resolveLine(draft)
		if err != nil {
			return Quote{}, fmt.Errorf("item %d: %w", i, err)
		}
		quote.Items = append(quote.Items, line)
		quote.Total = quote.Total.Add(line.Subtotal)
	}
	return quote, nil
}

func (p *PricingEngine) resolveLine(draft LineDraft) (domain.OrderLineItem, error) {
	if draft.Quantity < 1 {
		return domain.OrderLineItem{}, newValidationError("quantity", "must be at least 1")
	}
	if draft.Combination != nil {
		return p.resolveHalfPizza(draft)
	}

	item, err := p.availableItem(draft.MenuItemID, "menu_item_id")
	if err != nil {
		return domain.OrderLineItem{}, err
	}

	line := domain.OrderLineItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   draft.Quantity,
		PriceFrom:  item.PriceFrom,
	}
	for _, selection := range draft.Selections {
		group, err := p.resolveGroup(item, selection)
		if err != nil {
			return domain.OrderLineItem{}, err
		}
		line.SelectedVariations = append(line.SelectedVariations, group)
	}
	if err := p.ValidateSelections(item, line.SelectedVariations); err != nil {
		return domain.OrderLineItem{}, err
	}

	line.Subtotal, err = p.LineSubtotal(line)
	return line, err
}

func (p *PricingEngine) resolveHalfPizza(draft LineDraft) (domain.OrderLineItem, error) {
	c := draft.Combination
	first, err := p.availableItem(c.Flavor1ID, "combination.flavor1_id")
	if err != nil {
		return domain.OrderLineItem{}, err
	}
	second, err := p.availableItem(c.Flavor2ID, "combination.flavor2_id")
	if err != nil {
		return domain.OrderLineItem{}, err
	}
	if !first.IsPizza || !second.IsPizza {
		return domain.OrderLineItem{}, newValidationError("combination", "both flavors must be pizzas")
	}

	combination := &domain.Combination{
		Flavor1ID:   first.ID,
		Flavor1Name: first.Name,
		Flavor2ID:   second.ID,
		Flavor2Name: second.Name,
		Size:        c.Size,
	}
	unit, err := p.combinationPrice(combination)
	if err != nil {
		return domain.OrderLineItem{}, err
	}

	menuItemID := draft.MenuItemID
	if menuItemID == "" {
		menuItemID = first.ID
	}
	line := domain.OrderLineItem{
		MenuItemID:  menuItemID,
		Name:        fmt.Sprintf("1/2 %s + 1/2 %s (%s)", first.Name, second.Name, c.Size),
		Price:       unit,
		Quantity:    draft.Quantity,
		IsHalfPizza: true,
		Combination: combination,
	}
	line.Subtotal, err = p.LineSubtotal(line)
	return line, err
}

func (p *PricingEngine) availableItem(id, field string) (domain.MenuItem, error) {
	item, ok := p.items[id]
	if !ok {
		return domain.MenuItem{}, newValidationError(field, "unknown menu item %q", id)
	}
	if !item.Available {
		return domain.MenuItem{}, newValidationError(field, "%s is unavailable", item.Name)
	}
	return item, nil
}

func (p *PricingEngine) resolveGroup(item domain.MenuItem, selection GroupSelection) (domain.SelectedVariationGroup, error) {
	field := "selections." + selection.GroupID
	if !contains(item.VariationGroupIDs, selection.GroupID) {
		return domain.SelectedVariationGroup{}, newValidationError(field, "group is not offered for %s", item.Name)
	}
	group, ok := p.groups[selection.GroupID]
	if !ok {
		return domain.SelectedVariationGroup{}, newValidationError(field, "unknown variation group")
	}

	out := domain.SelectedVariationGroup{GroupID: group.ID, GroupName: group.Name}
	picked := 0
	for _, pick := range selection.Variations {
		if pick.Quantity < 1 {
			return domain.SelectedVariationGroup{}, newValidationError(field, "variation quantity must be at least 1")
		}
		if pick.Quantity > group.MaxAllowed-picked {
			return domain.SelectedVariationGroup{}, groupBoundsError(group)
		}
		picked += pick.Quantity
		v, ok := p.variations[pick.VariationID]
		if !ok || !contains(group.VariationIDs, pick.VariationID) {
			return domain.SelectedVariationGroup{}, newValidationError(field, "variation %q is not part of %s", pick.VariationID, group.Name)
		}
		if !v.Available {
			return domain.SelectedVariationGroup{}, newValidationError(field, "%s is unavailable", v.Name)
		}
		if len(v.CategoryIDs) > 0 && !contains(v.CategoryIDs, item.CategoryID) {
			return domain.SelectedVariationGroup{}, newValidationError(field, "%s does not apply to %s", v.Name, item.Name)
		}
		out.Variations = append(out.Variations, domain.SelectedVariation{
			VariationID: v.ID,
			Name:        v.Name,
			Price:       v.AdditionalPrice,
			Quantity:    pick.Quantity,
		})
	}
	return out, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
