package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rajeebsahoo/qkart-frontend/internal/cart"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

const maxRating = 5

// renderMain composes the full screen: header, search bar, product table
// beside the cart pane, notice line, command bar.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar(styles))
	b.WriteString("\n")

	productsWidth := m.width
	if m.sess.Authenticated() {
		productsWidth = m.width * 2 / 3
	}
	products := m.renderProducts(styles, productsWidth)

	if m.sess.Authenticated() {
		cartPane := m.renderCart(styles, m.width-productsWidth)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, products, cartPane))
	} else {
		b.WriteString(products)
	}
	b.WriteString("\n")
	b.WriteString(m.renderNotice(styles))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar(styles))

	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	title := styles.Title.Render("QKART")

	who := "anonymous"
	if m.sess.Authenticated() {
		who = "logged in"
		if m.sess.Username != "" {
			who = "logged in as " + m.sess.Username
		}
	}

	status := styles.MutedText.Render(who)
	if m.snapshot.Loading {
		status = styles.AccentText.Render("loading…") + "  " + status
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + status
}

func (m Model) renderSearchBar(styles Styles) string {
	if m.searching {
		return styles.SearchActive.Render(m.searchInput.View())
	}
	if v := m.searchInput.Value(); v != "" {
		return styles.MutedText.Render("filter: ") + styles.Text.Render(v)
	}
	return styles.MutedText.Render("press / to search")
}

func (m Model) renderProducts(styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Products"))
	b.WriteString("\n")

	switch {
	case m.snapshot.Loading && !m.snapshot.CatalogReady:
		b.WriteString(styles.MutedText.Render("Loading products…"))
	case m.snapshot.NothingFound:
		b.WriteString(styles.MutedText.Render("No products found"))
	default:
		inCart := make(map[string]int, len(m.snapshot.RawEntries))
		for _, e := range m.snapshot.RawEntries {
			inCart[e.ProductID] = e.Qty
		}
		for i, p := range m.snapshot.Products {
			line := formatProductRow(p, inCart[p.ID], width)
			if i == m.selectedRow {
				line = styles.SelectedRow.Render(line)
			} else {
				line = styles.Text.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return styles.Pane.Width(width - 2).Render(b.String())
}

func (m Model) renderCart(styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Cart"))
	b.WriteString("\n")

	switch {
	case !m.snapshot.HasCart:
		b.WriteString(styles.MutedText.Render("Cart is empty"))
	case len(m.snapshot.CartItems) == 0:
		b.WriteString(styles.MutedText.Render("Cart is empty"))
	default:
		for _, it := range m.snapshot.CartItems {
			b.WriteString(fmt.Sprintf("%s ×%d  %s\n", it.Name, it.Qty, formatCost(it.Cost*float64(it.Qty))))
		}
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render("Total: " + formatCost(cart.Total(m.snapshot.CartItems))))
	}

	return styles.Pane.Width(width - 2).Render(b.String())
}

func (m Model) renderNotice(styles Styles) string {
	n := m.snapshot.Notice
	if n.Text == "" {
		return ""
	}
	switch n.Level {
	case state.LevelWarning:
		return styles.NoticeWarn.Render(n.Text)
	case state.LevelError:
		return styles.NoticeError.Render(n.Text)
	default:
		return styles.NoticeInfo.Render(n.Text)
	}
}

func (m Model) renderCommandBar(styles Styles) string {
	return styles.CommandBar.Render("/ search  j/k move  a add  +/- qty  r refresh cart  x dismiss  q quit")
}

// formatProductRow lays out one product line: name, category, cost, rating.
func formatProductRow(p storefront.Product, qtyInCart, width int) string {
	name := p.Name
	if qtyInCart > 0 {
		name = fmt.Sprintf("%s (×%d)", p.Name, qtyInCart)
	}
	right := fmt.Sprintf("%-10s %8s %s", p.Category, formatCost(p.Cost), stars(p.Rating))

	gap := width - 4 - len(name) - len(right)
	if gap < 1 {
		gap = 1
	}
	return name + strings.Repeat(" ", gap) + right
}

// stars renders an integer rating out of five.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxRating {
		rating = maxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", maxRating-rating)
}

func formatCost(cost float64) string {
	return fmt.Sprintf("$%.2f", cost)
}
