// Package bloom simulates and renders an interactive particle field.
//
// Particles drift across a 2D field at constant speed and bounce off its
// edges. Particles near the pointer grow quickly toward a maximum size and
// shift from a base color to a highlight color; away from the pointer they
// shrink back at a steady rate. Every parameter can change while the field
// is running.
//
// # Quick start
//
// The [Animator] is host-agnostic. A host feeds it pointer and resize events
// and calls [Animator.Step] once per display refresh with a [Surface] to
// paint into:
//
//	anim := bloom.NewAnimator(bloom.DefaultConfig())
//	anim.Start(800, 600)
//	// every refresh:
//	anim.Step(surface)
//
// Two hosts ship with the module: ebitenview opens a window with
// [Ebitengine], termview paints into a terminal with [tcell].
//
// # Frame order
//
// Each particle runs, in this order, every frame: pointer proximity check,
// grow or decay, recolor, move, draw. Color therefore reflects the size after
// this frame's growth, and a fully shrunk particle that is not hovered is not
// drawn.
//
// # Configuration
//
// A [Config] is a plain snapshot. [Animator.Configure] decides how much work
// a change needs: a new particle count rebuilds the population, new size
// bounds reclamp particles in place, and colors or radius are simply read on
// the next frame. [Animator.ApplyPreset] swaps in one of the built-in
// [Presets] and always rebuilds.
//
// # Scripts
//
// [LoadScript] builds a [Runner] from JSON that moves, sweeps and removes the
// pointer, resizes the field and applies presets frame by frame. Sweeps are
// eased with [gween].
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [gween]: https://github.com/tanema/gween
package bloom
