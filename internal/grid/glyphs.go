package grid

// glyphs is indexed by up*27 + right*9 + down*3 + left with pens counted as
// 0 (none), 1 (thin) and 2 (thick). Comments list up right down left using
// · for none, t for thin and T for thick.
var glyphs = [81]rune{
	' ', // · · · ·
	'╴', // · · · t
	'╸', // · · · T
	'╷', // · · t ·
	'┐', // · · t t
	'┑', // · · t T
	'╻', // · · T ·
	'┒', // · · T t
	'┓', // · · T T
	'╶', // · t · ·
	'─', // · t · t
	'╾', // · t · T
	'┌', // · t t ·
	'┬', // · t t t
	'┭', // · t t T
	'┎', // · t T ·
	'┰', // · t T t
	'┱', // · t T T
	'╺', // · T · ·
	'╼', // · T · t
	'━', // · T · T
	'┍', // · T t ·
	'┮', // · T t t
	'┯', // · T t T
	'┏', // · T T ·
	'┲', // · T T t
	'┳', // · T T T
	'╵', // t · · ·
	'┘', // t · · t
	'┙', // t · · T
	'│', // t · t ·
	'┤', // t · t t
	'┥', // t · t T
	'╽', // t · T ·
	'┧', // t · T t
	'┪', // t · T T
	'└', // t t · ·
	'┴', // t t · t
	'┵', // t t · T
	'├', // t t t ·
	'┼', // t t t t
	'┽', // t t t T
	'┟', // t t T ·
	'╁', // t t T t
	'╅', // t t T T
	'┕', // t T · ·
	'┶', // t T · t
	'┷', // t T · T
	'┝', // t T t ·
	'┾', // t T t t
	'┿', // t T t T
	'┢', // t T T ·
	'╆', // t T T t
	'╈', // t T T T
	'╹', // T · · ·
	'┚', // T · · t
	'┛', // T · · T
	'╿', // T · t ·
	'┦', // T · t t
	'┩', // T · t T
	'┃', // T · T ·
	'┨', // T · T t
	'┫', // T · T T
	'┖', // T t · ·
	'┸', // T t · t
	'┹', // T t · T
	'┞', // T t t ·
	'╀', // T t t t
	'╃', // T t t T
	'┠', // T t T ·
	'╂', // T t T t
	'╉', // T t T T
	'┗', // T T · ·
	'┺', // T T · t
	'┻', // T T · T
	'┡', // T T t ·
	'╄', // T T t t
	'╇', // T T t T
	'┣', // T T T ·
	'╊', // T T T t
	'╋', // T T T T
}
