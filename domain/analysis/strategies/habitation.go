package strategies

import (
	"assurscore/domain/analysis"
	"assurscore/domain/insurance"
)

func habitationStrategies() []analysis.Strategy {
	return []analysis.Strategy{
		theftGuarantee{base{id: "habitation.theft_guarantee", category: analysis.CategoryGarantie, free: true}},
		valuablesCapital{base{id: "habitation.valuables_capital", category: analysis.CategoryCouverture}},
		habitationPremium{base{id: "habitation.premium_benchmark", category: analysis.CategoryTarif, free: true}},
		secondaryResidence{base{id: "habitation.secondary_residence", category: analysis.CategoryRisque}},
	}
}

// theftGuarantee checks the theft guarantee is part of the contract.
type theftGuarantee struct{ base }

func (theftGuarantee) Applies(a insurance.Answers) bool {
	return a.Has("garanties")
}

func (s theftGuarantee) Evaluate(a insurance.Answers) analysis.Verdict {
	for _, g := range a.Strings("garanties") {
		if g == "vol" {
			return analysis.Verdict{
				Status:   analysis.StatusOK,
				Priority: analysis.PriorityP3,
				Content: analysis.Content{
					Title: "Garantie vol présente",
					Short: "Le vol est couvert par votre contrat.",
					Full:  "La garantie vol figure dans votre contrat habitation.",
				},
			}
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusDanger,
		Priority: analysis.PriorityP2,
		Content: analysis.Content{
			Title: "Pas de garantie vol",
			Short: "Un cambriolage ne serait pas indemnisé.",
			Full: "Votre contrat ne mentionne pas la garantie vol. En cas de " +
				"cambriolage, **aucune indemnisation** ne serait versée pour les biens " +
				"dérobés. C'est une des garanties les plus sollicitées en habitation.",
		},
	}
}

// valuablesCapital compares the declared valuables capital against the
// declared contents value.
type valuablesCapital struct{ base }

func (valuablesCapital) Applies(a insurance.Answers) bool {
	return a.Bool("objets_valeur")
}

func (s valuablesCapital) Evaluate(a insurance.Answers) analysis.Verdict {
	capital, hasCapital := a.Float("capital_objets_valeur")
	contents, hasContents := a.Float("valeur_biens")
	if hasCapital && hasContents && capital < contents*0.2 {
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Capital objets de valeur insuffisant",
				Short: "Le plafond objets de valeur paraît bas face à vos biens.",
				Full: "Le capital garanti pour vos objets de valeur représente moins " +
					"de 20% de la valeur totale déclarée de vos biens. En cas de vol, " +
					"bijoux et matériel haut de gamme seraient plafonnés bien en " +
					"dessous de leur valeur. Faites réévaluer ce capital.",
			},
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Objets de valeur déclarés",
			Short: "Vos objets de valeur sont couverts par un capital dédié.",
			Full:  "Un capital dédié couvre vos objets de valeur. Conservez factures et expertises.",
		},
	}
}

// habitationPremium compares the premium to a per-square-meter reference.
type habitationPremium struct{ base }

func (habitationPremium) Applies(a insurance.Answers) bool {
	_, hasPremium := a.Float("prime_mensuelle")
	_, hasSurface := a.Float("surface")
	return hasPremium && hasSurface
}

func (s habitationPremium) Evaluate(a insurance.Answers) analysis.Verdict {
	premium, _ := a.Float("prime_mensuelle")
	surface, _ := a.Float("surface")
	if surface <= 0 {
		surface = 1
	}
	// Market reference hovers around 0.35 EUR/m2/month for an apartment.
	perM2 := premium / surface
	if perM2 > 0.55 {
		yearly := (perM2 - 0.40) * surface * 12
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Prime élevée pour la surface",
				Short: "Votre prime au m² dépasse nettement la moyenne.",
				Full: "Rapportée à la surface, votre prime dépasse la fourchette " +
					"haute du marché. Les contrats habitation se comparent bien en " +
					"ligne à garanties constantes.",
			},
			Savings: savings(yearly*0.5, yearly),
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Prime dans le marché",
			Short: "Votre prime au m² est dans la moyenne.",
			Full:  "Votre prime rapportée à la surface est dans la fourchette observée.",
		},
	}
}

// secondaryResidence flags extended-absence clauses for secondary homes.
type secondaryResidence struct{ base }

func (secondaryResidence) Applies(a insurance.Answers) bool {
	return a.Bool("residence_secondaire")
}

func (s secondaryResidence) Evaluate(a insurance.Answers) analysis.Verdict {
	return analysis.Verdict{
		Status:   analysis.StatusAttention,
		Priority: analysis.PriorityP2,
		Content: analysis.Content{
			Title: "Clause d'inhabitation à vérifier",
			Short: "Les résidences secondaires subissent souvent une clause d'absence.",
			Full: "La plupart des contrats réduisent ou excluent la garantie vol " +
				"au-delà de 60 ou 90 jours d'inoccupation. Pour une résidence " +
				"secondaire, vérifiez la **clause d'inhabitation** et déclarez " +
				"l'usage réel du logement.",
		},
	}
}
