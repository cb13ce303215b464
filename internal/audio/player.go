// internal/audio/player.go
package audio

import (
	"log"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"go-arena-combat/internal/assets"
	"go-arena-combat/internal/event"
)

// Player проигрывает короткие звуки по событиям симуляции. Подписывается
// на диспетчер и дальше живёт сам; симуляция о нём не знает.
//
// Звук строго непрошибаем: незагруженный файл просто молчит, а паника
// аудиодрайвера глотается на границе и не рушит шаг симуляции.
type Player struct {
	sounds map[event.EventType]*eaudio.Player
}

var soundFiles = map[event.EventType]string{
	event.CombatantHit:      "hit.wav",
	event.WeaponClash:       "clash.wav",
	event.ProjectileFired:   "shot.wav",
	event.WallBounce:        "bounce.wav",
	event.FireballDetonated: "detonation.wav",
}

// NewPlayer грузит звуки и подписывается на боевые события.
func NewPlayer(dispatcher *event.Dispatcher) *Player {
	p := &Player{sounds: make(map[event.EventType]*eaudio.Player)}
	for evt, file := range soundFiles {
		player, err := assets.LoadSound(file)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		p.sounds[evt] = player
		dispatcher.Subscribe(evt, p)
	}
	return p
}

// OnEvent реализует event.Listener.
func (p *Player) OnEvent(e event.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: playback panic: %v", r)
		}
	}()
	player, ok := p.sounds[e.Type]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		return
	}
	player.Play()
}
