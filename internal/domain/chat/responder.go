package chat

import "strings"

// Responder genera la respuesta simulada del doctor para un mensaje del usuario.
type Responder interface {
	Reply(userText string) string
}

type keywordRule struct {
	keywords []string
	reply    string
}

// KeywordResponder elige la primera regla cuyo keyword aparezca en el mensaje
// (sin distinguir mayúsculas). Sin match devuelve Fallback.
type KeywordResponder struct {
	rules    []keywordRule
	Fallback string
}

func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{
		rules: []keywordRule{
			{
				keywords: []string{"sakit", "demam"},
				reply:    "Saya mengerti kekhawatiran Anda. Bisakah Anda ceritakan lebih detail tentang gejala yang dialami? Sudah berapa lama kondisi ini berlangsung?",
			},
			{
				keywords: []string{"makan", "nafsu"},
				reply:    "Masalah nafsu makan memang perlu diperhatikan. Apakah ada perubahan dalam rutinitas atau lingkungan hewan peliharaan Anda belakangan ini?",
			},
			{
				keywords: []string{"vaksin", "imunisasi"},
				reply:    "Vaksinasi sangat penting untuk kesehatan hewan peliharaan. Saya akan berikan jadwal vaksinasi yang tepat. Kapan vaksinasi terakhir dilakukan?",
			},
			{
				keywords: []string{"terima kasih", "thanks"},
				reply:    "Sama-sama! Jangan ragu untuk menghubungi saya jika ada pertanyaan lain. Semoga hewan peliharaan Anda segera membaik.",
			},
		},
		Fallback: "Terima kasih atas informasinya. Berdasarkan yang Anda sampaikan, saya sarankan untuk melakukan pemeriksaan lebih lanjut. Apakah ada gejala lain yang perlu saya ketahui?",
	}
}

func (k *KeywordResponder) Reply(userText string) string {
	msg := strings.ToLower(userText)
	for _, r := range k.rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return k.Fallback
}
