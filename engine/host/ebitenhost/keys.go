package ebitenhost

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/hajimehoshi/ebiten/v2"
)

// toEbiten maps engine key codes to ebiten keys.
var toEbiten = map[common.Key]ebiten.Key{
	common.Key('A'): ebiten.KeyA,
	common.Key('B'): ebiten.KeyB,
	common.Key('C'): ebiten.KeyC,
	common.Key('D'): ebiten.KeyD,
	common.Key('E'): ebiten.KeyE,
	common.Key('F'): ebiten.KeyF,
	common.Key('G'): ebiten.KeyG,
	common.Key('H'): ebiten.KeyH,
	common.Key('I'): ebiten.KeyI,
	common.Key('J'): ebiten.KeyJ,
	common.Key('K'): ebiten.KeyK,
	common.Key('L'): ebiten.KeyL,
	common.Key('M'): ebiten.KeyM,
	common.Key('N'): ebiten.KeyN,
	common.Key('O'): ebiten.KeyO,
	common.Key('P'): ebiten.KeyP,
	common.Key('Q'): ebiten.KeyQ,
	common.Key('R'): ebiten.KeyR,
	common.Key('S'): ebiten.KeyS,
	common.Key('T'): ebiten.KeyT,
	common.Key('U'): ebiten.KeyU,
	common.Key('V'): ebiten.KeyV,
	common.Key('W'): ebiten.KeyW,
	common.Key('X'): ebiten.KeyX,
	common.Key('Y'): ebiten.KeyY,
	common.Key('Z'): ebiten.KeyZ,
	common.Key('0'): ebiten.KeyDigit0,
	common.Key('1'): ebiten.KeyDigit1,
	common.Key('2'): ebiten.KeyDigit2,
	common.Key('3'): ebiten.KeyDigit3,
	common.Key('4'): ebiten.KeyDigit4,
	common.Key('5'): ebiten.KeyDigit5,
	common.Key('6'): ebiten.KeyDigit6,
	common.Key('7'): ebiten.KeyDigit7,
	common.Key('8'): ebiten.KeyDigit8,
	common.Key('9'): ebiten.KeyDigit9,

	common.KeySpace:      ebiten.KeySpace,
	common.KeyEsc:        ebiten.KeyEscape,
	common.KeyEnter:      ebiten.KeyEnter,
	common.KeyTab:        ebiten.KeyTab,
	common.KeyBackspace:  ebiten.KeyBackspace,
	common.KeyRight:      ebiten.KeyArrowRight,
	common.KeyLeft:       ebiten.KeyArrowLeft,
	common.KeyDown:       ebiten.KeyArrowDown,
	common.KeyUp:         ebiten.KeyArrowUp,
	common.KeyLeftShift:  ebiten.KeyShiftLeft,
	common.KeyLeftCtrl:   ebiten.KeyControlLeft,
	common.KeyLeftAlt:    ebiten.KeyAltLeft,
	common.KeyRightShift: ebiten.KeyShiftRight,
	common.KeyRightCtrl:  ebiten.KeyControlRight,
	common.KeyRightAlt:   ebiten.KeyAltRight,
}

// fromEbiten is the inverse of toEbiten.
var fromEbiten = func() map[ebiten.Key]common.Key {
	m := make(map[ebiten.Key]common.Key, len(toEbiten))
	for k, ek := range toEbiten {
		m[ek] = k
	}
	return m
}()

// EbitenKey returns the ebiten key for an engine key code.
//
// Parameters:
//   - k: the engine key
//
// Returns:
//   - ebiten.Key: the ebiten key
//   - bool: false if the key has no ebiten equivalent
func EbitenKey(k common.Key) (ebiten.Key, bool) {
	ek, ok := toEbiten[k]
	return ek, ok
}

// EngineKey returns the engine key code for an ebiten key.
//
// Parameters:
//   - ek: the ebiten key
//
// Returns:
//   - common.Key: the engine key
//   - bool: false if the key is not mapped
func EngineKey(ek ebiten.Key) (common.Key, bool) {
	k, ok := fromEbiten[ek]
	return k, ok
}
