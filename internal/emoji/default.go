package emoji

func point(r rune) Range { return Range{Lo: r, Hi: r} }

func span(lo, hi rune) Range { return Range{Lo: lo, Hi: hi} }

// defaultRanges is the built-in emoji-like set. The wide 24C2-1F251 block
// already covers most of the individual symbols listed after it; they are
// kept so the table still reads correctly if that block is ever narrowed.
var defaultRanges = []Range{
	span(0x1F600, 0x1F64F), // emoticons
	span(0x1F300, 0x1F5FF), // symbols & pictographs
	span(0x1F680, 0x1F6FF), // transport & map
	span(0x1F1E6, 0x1F1FF), // regional indicators (flags)
	span(0x24C2, 0x1F251),

	point(0x231A), point(0x231B), point(0x2328), point(0x23CF),
	span(0x23E9, 0x23F3), span(0x23F8, 0x23FA),
	point(0x24C2), point(0x25AA), point(0x25AB), point(0x25B6), point(0x25C0),
	span(0x25FB, 0x25FE),
	span(0x2600, 0x2604), point(0x260E), point(0x2611), point(0x2614), point(0x2615),
	point(0x2618), point(0x261D), point(0x2620), point(0x2622), point(0x2623),
	point(0x2626), point(0x262A), point(0x262E), point(0x262F),
	span(0x2638, 0x263A), point(0x2640), point(0x2642),
	span(0x2648, 0x2653),                                       // zodiac
	point(0x2660), point(0x2663), point(0x2665), point(0x2666), // card suits
	point(0x2668), point(0x267B), point(0x267F),
	span(0x2692, 0x2694), point(0x2696), point(0x2697), point(0x2699),
	point(0x269B), point(0x269C), point(0x26A0), point(0x26A1),
	point(0x26AA), point(0x26AB), point(0x26B0), point(0x26B1),
	point(0x26BD), point(0x26BE), point(0x26C4), point(0x26C5), point(0x26C8),
	point(0x26CE), point(0x26CF), point(0x26D1), point(0x26D3), point(0x26D4),
	point(0x26E9), point(0x26EA), span(0x26F0, 0x26F5), span(0x26F7, 0x26FA),
	point(0x26FD),
	point(0x2702), point(0x2705), span(0x2708, 0x270D), point(0x270F),
	point(0x2712), point(0x2714), point(0x2716), point(0x271D), point(0x2721),
	point(0x2728), point(0x2733), point(0x2734), point(0x2744), point(0x2747),
	point(0x274C), point(0x274E), span(0x2753, 0x2755), point(0x2757),
	point(0x2763), point(0x2764), span(0x2795, 0x2797), point(0x27A1),
	point(0x27B0), point(0x27BF),
	point(0x2934), point(0x2935), // arrows
	span(0x2B05, 0x2B07), point(0x2B1B), point(0x2B1C), point(0x2B50), point(0x2B55),
	point(0x3030), // wavy dash
	point(0x303D), point(0x3297), point(0x3299),
	point(0x1F004), // mahjong red dragon
	point(0x1F0CF), // joker
}

// DefaultRanges returns a copy of the unmerged built-in ranges.
func DefaultRanges() []Range {
	out := make([]Range, len(defaultRanges))
	copy(out, defaultRanges)
	return out
}

// DefaultTable is the merged built-in table.
var DefaultTable = NewTable(defaultRanges...)
