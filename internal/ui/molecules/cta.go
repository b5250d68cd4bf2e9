package molecules

import "github.com/lodestone-studio/lodestone/internal/ui/atoms"

// ShopCTAButton is the shop call to action: a medium primary button with the
// "shop-cta" class.
type ShopCTAButton struct {
	*atoms.Button
}

func NewShopCTAButton(text string) *ShopCTAButton {
	return &ShopCTAButton{Button: atoms.NewButton(text).WithClass("shop-cta")}
}
