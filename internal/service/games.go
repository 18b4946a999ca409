package service

import (
	"slices"

	"github.com/MKhiriev/days-together/models"
)

type gameCatalog struct {
	games []models.Game
}

func NewGameCatalog() GameCatalog {
	return &gameCatalog{games: defaultGames}
}

func (g *gameCatalog) Games() []models.Game {
	return slices.Clone(g.games)
}

func game(id int, emoji, titleEN, titleES, descEN, descES string) models.Game {
	return models.Game{
		ID:          id,
		Emoji:       emoji,
		Title:       map[models.Language]string{models.English: titleEN, models.Spanish: titleES},
		Description: map[models.Language]string{models.English: descEN, models.Spanish: descES},
	}
}

var defaultGames = []models.Game{
	game(1, "❤️", "Love Quiz", "Quiz de Amor", "Test how well you know each other", "Prueba qué tan bien se conocen"),
	game(2, "🎭", "Truth or Dare", "Verdad o Reto", "Classic game for couples", "Juego clásico para parejas"),
	game(3, "🤔", "Would You Rather", "¿Qué Preferirías?", "Choose between two options", "Elige entre dos opciones"),
	game(4, "❓", "20 Questions", "20 Preguntas", "Guess what your partner is thinking", "Adivina lo que tu pareja está pensando"),
	game(5, "🙈", "Never Have I Ever", "Yo Nunca", "Learn new things about each other", "Aprende cosas nuevas el uno del otro"),
	game(6, "🎲", "Two Truths One Lie", "Dos Verdades y Una Mentira", "Can you spot the lie?", "¿Puedes detectar la mentira?"),
	game(7, "📖", "Story Builder", "Constructor de Historias", "Create a story together", "Crea una historia juntos"),
	game(8, "🧠", "Memory Match", "Memoria", "Test your memory skills", "Pon a prueba tu memoria"),
	game(9, "🎬", "Emoji Charades", "Charadas con Emojis", "Act out using only emojis", "Actúa usando solo emojis"),
	game(10, "💝", "Love Trivia", "Trivia de Amor", "Answer questions about your relationship", "Responde preguntas sobre su relación"),
}
