package dnd5e

import (
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
)

func apiReferenceItemToClass(input *apiEntities.ReferenceItem) *rulebook.ClassReference {
	return &rulebook.ClassReference{
		Key:  input.Key,
		Name: input.Name,
	}
}

func apiReferenceItemsToClasses(input []*apiEntities.ReferenceItem) []*rulebook.ClassReference {
	output := make([]*rulebook.ClassReference, len(input))
	for i, apiClass := range input {
		output[i] = apiReferenceItemToClass(apiClass)
	}
	return output
}

func apiClassToClass(input *apiEntities.Class) *rulebook.ClassReference {
	if input == nil {
		return nil
	}

	proficiencies := make([]string, 0, len(input.Proficiencies))
	for _, p := range input.Proficiencies {
		if p == nil {
			continue
		}
		proficiencies = append(proficiencies, p.Name)
	}

	return &rulebook.ClassReference{
		Key:           input.Key,
		Name:          input.Name,
		HitDie:        input.HitDie,
		Proficiencies: proficiencies,
	}
}

func apiRaceToRace(input *apiEntities.Race) *rulebook.RaceReference {
	if input == nil {
		return nil
	}

	return &rulebook.RaceReference{
		Key:   input.Key,
		Name:  input.Name,
		Speed: input.Speed,
	}
}
