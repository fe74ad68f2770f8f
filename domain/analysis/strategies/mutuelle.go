package strategies

import (
	"assurscore/domain/analysis"
	"assurscore/domain/insurance"
)

func mutuelleStrategies() []analysis.Strategy {
	return []analysis.Strategy{
		hospitalCover{base{id: "mutuelle.hospital_cover", category: analysis.CategoryCouverture, free: true}},
		seniorLevel{base{id: "mutuelle.senior_level", category: analysis.CategoryProfil}},
		softMedicine{base{id: "mutuelle.soft_medicine", category: analysis.CategoryGarantie}},
		mutuellePremium{base{id: "mutuelle.premium_benchmark", category: analysis.CategoryTarif}},
	}
}

// hospitalCover crosses the hospital reimbursement level with exposure to
// fee overruns.
type hospitalCover struct{ base }

func (hospitalCover) Applies(a insurance.Answers) bool {
	return a.Has("niveau_hospitalisation")
}

func (s hospitalCover) Evaluate(a insurance.Answers) analysis.Verdict {
	level := a.String("niveau_hospitalisation")
	overruns := a.Bool("depassements_honoraires")
	if level == "100" && overruns {
		return analysis.Verdict{
			Status:   analysis.StatusDanger,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Hospitalisation à 100% avec dépassements",
				Short: "Un remboursement à 100% ne couvre aucun dépassement d'honoraires.",
				Full: "Votre niveau hospitalisation à 100% du tarif de convention ne " +
					"prend en charge **aucun dépassement d'honoraires**, alors que vous " +
					"déclarez y être exposé. Une opération en secteur 2 peut laisser " +
					"plusieurs centaines d'euros à votre charge. Visez 200% ou plus.",
			},
		}
	}
	if level == "100" {
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP3,
			Content: analysis.Content{
				Title: "Hospitalisation au minimum",
				Short: "Le niveau 100% expose aux dépassements en secteur 2.",
				Full: "Un remboursement à 100% du tarif de convention suffit en " +
					"secteur 1 mais expose aux dépassements en clinique privée.",
			},
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Hospitalisation bien couverte",
			Short: "Votre niveau hospitalisation absorbe les dépassements usuels.",
			Full:  "Votre niveau de remboursement hospitalisation couvre les dépassements d'honoraires usuels.",
		},
	}
}

// seniorLevel checks that coverage follows age-driven consumption.
type seniorLevel struct{ base }

func (seniorLevel) Applies(a insurance.Answers) bool {
	age, ok := a.Float("age_assure")
	return ok && age >= 60
}

func (s seniorLevel) Evaluate(a insurance.Answers) analysis.Verdict {
	level := a.String("niveau_hospitalisation")
	if level == "100" || level == "150" {
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Couverture légère après 60 ans",
				Short: "Les besoins hospitaliers augmentent avec l'âge.",
				Full: "Après 60 ans, la fréquence d'hospitalisation augmente " +
					"sensiblement. Un niveau de remboursement limité devient vite " +
					"coûteux. Les formules seniors renforcent hospitalisation et " +
					"appareillage pour un surcoût maîtrisé.",
			},
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Couverture senior adaptée",
			Short: "Votre niveau de garanties suit vos besoins.",
			Full:  "Votre couverture hospitalisation est dimensionnée pour votre tranche d'âge.",
		},
	}
}

// softMedicine reminds that alternative medicine needs a dedicated package.
type softMedicine struct{ base }

func (softMedicine) Applies(a insurance.Answers) bool {
	for _, b := range a.Strings("besoins") {
		if b == "medecine_douce" {
			return true
		}
	}
	return false
}

func (s softMedicine) Evaluate(a insurance.Answers) analysis.Verdict {
	return analysis.Verdict{
		Status:   analysis.StatusAttention,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Médecines douces : vérifiez le forfait",
			Short: "Ostéopathie et acupuncture ne sont remboursées que via un forfait dédié.",
			Full: "La Sécurité sociale ne rembourse pas les médecines douces. Seul " +
				"un forfait dédié de votre mutuelle (souvent 100-200 € par an) prend " +
				"en charge ostéopathie, chiropraxie ou acupuncture. Vérifiez son " +
				"montant et son plafond par séance.",
		},
	}
}

// mutuellePremium compares the premium to an age-banded reference.
type mutuellePremium struct{ base }

func (mutuellePremium) Applies(a insurance.Answers) bool {
	_, hasPremium := a.Float("prime_mensuelle")
	_, hasAge := a.Float("age_assure")
	return hasPremium && hasAge
}

func (s mutuellePremium) Evaluate(a insurance.Answers) analysis.Verdict {
	premium, _ := a.Float("prime_mensuelle")
	age, _ := a.Float("age_assure")
	reference := 40.0
	switch {
	case age >= 60:
		reference = 95.0
	case age >= 40:
		reference = 60.0
	}
	if premium > reference*1.35 {
		yearly := (premium - reference) * 12
		return analysis.Verdict{
			Status:   analysis.StatusAttention,
			Priority: analysis.PriorityP2,
			Content: analysis.Content{
				Title: "Cotisation au-dessus du marché",
				Short: "Votre cotisation dépasse la moyenne de votre tranche d'âge.",
				Full: "Votre cotisation dépasse d'au moins 35% la moyenne observée " +
					"pour votre tranche d'âge. La **résiliation infra-annuelle** permet " +
					"de changer de mutuelle à tout moment après un an.",
			},
			Savings: savings(yearly*0.4, yearly*0.8),
		}
	}
	return analysis.Verdict{
		Status:   analysis.StatusOK,
		Priority: analysis.PriorityP3,
		Content: analysis.Content{
			Title: "Cotisation dans le marché",
			Short: "Votre cotisation est cohérente avec votre âge.",
			Full:  "Votre cotisation est dans la fourchette observée pour votre tranche d'âge.",
		},
	}
}
