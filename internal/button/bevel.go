package button

import (
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
)

// BevelSide identifies one half of the diagonal cut between cell blocks.
type BevelSide string

const (
	BevelRight BevelSide = "right"
	BevelLeft  BevelSide = "left"
)

var bevelPaths = map[BevelSide]string{
	BevelRight: "M10.899 0H0V40H2C4.40603 40 6.55968 38.5075 7.4045 36.2547L17.4533 9.45786C19.1694 4.88161 15.7864 0 10.899 0Z",
	BevelLeft:  "M7.101 40H18V0H16C13.594 0 11.4403 1.49249 10.5955 3.74532L0.546698 30.5421C-1.1694 35.1184 2.21356 40 7.101 40Z",
}

// Bevel renders one bevel shape. flip mirrors it vertically so the cut leans
// the same way whichever side the icon sits on.
func Bevel(side BevelSide, accent cn.Fragment, flip bool) *markup.Node {
	return markup.El("svg",
		markup.El("path").SetAttr("d", bevelPaths[side]),
	).
		SetAttr("viewBox", "0 0 18 40").
		SetAttr("fill", "none").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("data-bevel", string(side)).
		SetClass(cn.Merge("relative h-cell-button", accent, cn.If(flip, "-scale-y-100")))
}
