package app

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/energy-calculator/calc"
	"github.com/lixenwraith/energy-calculator/constants"
	"github.com/lixenwraith/energy-calculator/ui"
)

// hit is a clickable region recorded during the last render
type hit struct {
	r       ui.Region
	overlay bool
	act     func()
}

func (s *State) addHit(r ui.Region, act func()) {
	if !r.Empty() {
		s.hits = append(s.hits, hit{r: r, act: act})
	}
}

func (s *State) addOverlayHit(r ui.Region, act func()) {
	if !r.Empty() {
		s.hits = append(s.hits, hit{r: r, overlay: true, act: act})
	}
}

var actionKeys = map[calc.ActionKind]string{
	calc.Action:      "action.action",
	calc.BonusAction: "action.bonus_action",
	calc.Reaction:    "action.reaction",
}

// Draw renders a frame and presents it
func (s *State) Draw(screen tcell.Screen) {
	s.Render(screen)
	screen.Show()
}

// Render draws the whole form; the result is recomputed on every call
func (s *State) Render(screen tcell.Screen) {
	s.hits = s.hits[:0]
	th := s.theme

	root := ui.Root(screen)
	root.Fill(th.Bg)

	if root.W < constants.MinWidth || root.H < constants.MinHeight {
		msg := s.tr.T("status.too_small", constants.MinWidth, constants.MinHeight)
		root.TextCenter(root.H/2, ui.Truncate(msg, root.W), th.Warn)
		return
	}

	menuBar, rest := ui.SplitVFixed(root, 1)
	body, status := ui.SplitVFixed(rest, rest.H-1)

	s.renderMenuBar(menuBar)

	form := ui.Center(body, min(constants.FormWidth, body.W-2), constants.FormHeight)
	s.renderForm(form)

	s.renderStatus(status)

	if s.Menu.Open() {
		s.renderMenu(root)
	}
}

func (s *State) renderMenuBar(bar ui.Region) {
	th := s.theme
	bar.Fill(th.MenuBar)
	file := bar.Chip(1, 0, s.tr.T("menu.file"), s.Menu.Open(), th.MenuBar, th.MenuSel)
	s.addHit(file, s.Menu.Toggle)
	s.addOverlayHit(file, s.Menu.Close)
}

func (s *State) renderForm(form ui.Region) {
	th := s.theme
	in := &s.Input
	rows := ui.NewRows(form)
	col := constants.LabelColumn

	// Level
	row := rows.Next(1)
	s.label(row, FieldLevel, "form.level")
	s.stepper(row, col, FieldLevel, strconv.Itoa(in.Level))
	s.addHit(row.Sub(0, 0, col, 1), s.focusFn(FieldLevel))
	s.rule(rows)

	// Action type
	s.label(rows.Next(1), FieldAction, "form.action_type")
	row = rows.Next(1)
	x := 1
	for _, a := range calc.Actions() {
		a := a
		chip := row.Chip(x, 0, s.tr.T(actionKeys[a]), in.Action == a, s.chipStyle(FieldAction), th.ChipSel)
		s.addHit(chip, func() {
			s.Focus = FieldAction
			s.SetAction(a)
		})
		x += chip.W + 1
	}
	s.rule(rows)

	// Components
	s.label(rows.Next(1), FieldVerbal, "form.components")
	row = rows.Next(1)
	verbal := row.Checkbox(1, 0, in.Verbal, s.tr.T("component.verbal"), s.boxStyle(FieldVerbal), th.Label)
	s.addHit(verbal, s.activateFn(FieldVerbal))
	somatic := row.Checkbox(verbal.W+4, 0, in.Somatic, s.tr.T("component.somatic"), s.boxStyle(FieldSomatic), th.Label)
	s.addHit(somatic, s.activateFn(FieldSomatic))
	s.rule(rows)

	// Material component
	row = rows.Next(1)
	s.label(row, FieldMaterialSign, "form.material")
	s.signChips(row, col, FieldMaterialSign, &in.Material)
	s.stepper(row, col+7, FieldMaterial, strconv.Itoa(in.Material.Amount))
	s.rule(rows)

	// Dice
	s.label(rows.Next(1), FieldDiceCount, "form.dice")
	row = rows.Next(1)
	x = 1 + row.Text(1, 0, s.tr.T("dice.amount")+" ", th.Dim)
	amount := s.stepper(row, x, FieldDiceCount, strconv.Itoa(in.DiceCount))
	x = amount.X - row.X + amount.W + 3
	x += row.Text(x, 0, s.tr.T("dice.type")+" ", th.Dim)
	s.stepper(row, x, FieldDiceKind, s.diceName(in.Dice))
	s.rule(rows)

	// Additional bonus
	row = rows.Next(1)
	s.label(row, FieldBonusSign, "form.bonus")
	s.signChips(row, col, FieldBonusSign, &in.Bonus)
	s.stepper(row, col+7, FieldBonus, strconv.Itoa(in.Bonus.Amount))
	s.rule(rows)

	// Result
	rows.Next(1).Text(0, 0, s.tr.T("form.result"), th.Label.Bold(true))
	inner := rows.Rest().Card("", ui.LineRounded, th.Border)
	inner.TextCenter(0, ui.Truncate(s.ResultText(), inner.W), th.Result)
}

// label draws a row caption, highlighted when one of the row's fields has focus
func (s *State) label(row ui.Region, first Field, key string) {
	st := s.theme.Label
	if s.rowHasFocus(first) {
		st = s.theme.Focus
	}
	row.Text(0, 0, ui.Truncate(s.tr.T(key), constants.LabelColumn-1), st)
}

func (s *State) rowHasFocus(first Field) bool {
	switch first {
	case FieldVerbal:
		return s.Focus == FieldVerbal || s.Focus == FieldSomatic
	case FieldMaterialSign:
		return s.Focus == FieldMaterialSign || s.Focus == FieldMaterial
	case FieldDiceCount:
		return s.Focus == FieldDiceCount || s.Focus == FieldDiceKind
	case FieldBonusSign:
		return s.Focus == FieldBonusSign || s.Focus == FieldBonus
	}
	return s.Focus == first
}

func (s *State) rule(rows *ui.Rows) {
	rows.Next(1).HLine(0, ui.LineSingle, s.theme.Rule)
}

// stepper draws a "◂ value ▸" control and registers its arrows as click targets
func (s *State) stepper(row ui.Region, x int, f Field, value string) ui.Region {
	arrow := s.theme.Dim
	if s.Focus == f {
		arrow = s.theme.Focus
	}
	r := row.Stepper(x, 0, value, arrow, s.theme.Value)
	if r.W >= 2 {
		s.addHit(r.Sub(0, 0, 2, 1), func() {
			s.Focus = f
			s.Adjust(f, -1)
		})
		s.addHit(r.Sub(r.W-2, 0, 2, 1), func() {
			s.Focus = f
			s.Adjust(f, 1)
		})
		s.addHit(r.Sub(2, 0, r.W-4, 1), s.focusFn(f))
	}
	return r
}

// signChips draws the "+" and "*" choices of an adjustment
func (s *State) signChips(row ui.Region, x int, f Field, adj *calc.Adjustment) {
	for _, sign := range []calc.Sign{calc.Additive, calc.Multiplicative} {
		sign := sign
		chip := row.Chip(x, 0, sign.Symbol(), adj.Sign == sign, s.chipStyle(f), s.theme.ChipSel)
		s.addHit(chip, func() {
			s.Focus = f
			if adj.Sign != sign {
				s.Activate(f)
			}
		})
		x += chip.W
	}
}

func (s *State) chipStyle(f Field) tcell.Style {
	if s.Focus == f {
		return s.theme.Chip.Underline(true)
	}
	return s.theme.Chip
}

func (s *State) boxStyle(f Field) tcell.Style {
	if s.Focus == f {
		return s.theme.Focus
	}
	return s.theme.Label
}

func (s *State) diceName(d calc.DiceKind) string {
	if d == calc.None {
		return s.tr.T("dice.none")
	}
	return d.String()
}

func (s *State) focusFn(f Field) func() {
	return func() { s.Focus = f }
}

func (s *State) activateFn(f Field) func() {
	return func() {
		s.Focus = f
		s.Activate(f)
	}
}

func (s *State) renderStatus(bar ui.Region) {
	th := s.theme
	left := []ui.BarSection{
		{Text: s.tr.T("status.version", s.version), Style: th.Status},
	}
	right := []ui.BarSection{
		{Text: s.tr.T("status.help"), Style: th.Status, Priority: 0},
		{Text: s.tr.T("policy." + s.Policy.Name), Style: th.Status, Priority: 5},
		{Text: s.Locale(), Style: th.Status.Bold(true), Priority: 10},
	}
	bar.StatusBar(0, left, right, th.Status, "")
}

// renderMenu draws the open File menu and, when open, the language submenu
func (s *State) renderMenu(root ui.Region) {
	th := s.theme
	items := []string{s.tr.T("menu.language") + "  ", s.tr.T("menu.quit")}

	fileSel := s.Menu.FileSel
	fileRows := root.MenuList(1, 1, items, fileSel, th.Border, th.MenuItem, th.MenuSel)
	for i, r := range fileRows {
		i := i
		s.addOverlayHit(r, func() { s.selectFileItem(i) })
	}
	if len(fileRows) > fileItemLanguage {
		marker := th.MenuItem
		if fileSel == fileItemLanguage {
			marker = th.MenuSel
		}
		fileRows[fileItemLanguage].TextRight(0, "▸", marker)
	}

	if s.Menu.Level != MenuLanguage || len(fileRows) == 0 {
		return
	}

	locales := s.bundle.Locales()
	labels := make([]string, len(locales))
	for i, loc := range locales {
		labels[i] = s.languageLabel(loc)
	}
	anchor := fileRows[fileItemLanguage]
	langRows := root.MenuList(anchor.X+anchor.W+1, anchor.Y-1, labels, s.Menu.LangSel, th.Border, th.MenuItem, th.MenuSel)
	for i, r := range langRows {
		i := i
		s.addOverlayHit(r, func() { s.selectLanguage(i) })
	}
}
