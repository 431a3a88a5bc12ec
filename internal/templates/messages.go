package templates

import (
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
)

// defaultTemplates — встроенный набор шаблонов экстренных сообщений.
// Плейсхолдеры {userName}, {location} и {time} подставляются буквально.
// Английский набор обязан быть полным: он служит запасным вариантом
// для любого языка.
var defaultTemplates = map[models.AlertKind]map[models.Language]string{
	models.KindSOS: {
		models.LangEnglish: "🚨 EMERGENCY ALERT from Sakhi App 🚨\n\n{userName} needs immediate help!\n\nLocation: {location}\nTime: {time}\n\nPlease contact them immediately or call emergency services.\n\nSent via Sakhi - Women Safety App",
		models.LangHindi:   "🚨 सखी ऐप से आपातकालीन अलर्ट 🚨\n\n{userName} को तत्काल सहायता चाहिए!\n\nस्थान: {location}\nसमय: {time}\n\nकृपया तुरंत उनसे संपर्क करें या आपातकालीन सेवाओं को कॉल करें।\n\nसखी - महिला सुरक्षा ऐप द्वारा भेजा गया",
		models.LangKannada: "🚨 ಸಖಿ ಆ್ಯಪ್‌ನಿಂದ ತುರ್ತು ಎಚ್ಚರಿಕೆ 🚨\n\n{userName} ಗೆ ತಕ್ಷಣದ ಸಹಾಯ ಬೇಕು!\n\nಸ್ಥಳ: {location}\nಸಮಯ: {time}\n\nದಯವಿಟ್ಟು ತಕ್ಷಣ ಅವರನ್ನು ಸಂಪರ್ಕಿಸಿ ಅಥವಾ ತುರ್ತು ಸೇವೆಗಳಿಗೆ ಕರೆ ಮಾಡಿ.\n\nಸಖಿ - ಮಹಿಳಾ ಸುರಕ್ಷತಾ ಆ್ಯಪ್ ಮೂಲಕ ಕಳುಹಿಸಲಾಗಿದೆ",
		models.LangTamil:   "🚨 சகி ஆப்பிலிருந்து அவசர எச்சரிக்கை 🚨\n\n{userName} க்கு உடனடி உதவி தேவை!\n\nஇடம்: {location}\nநேரம்: {time}\n\nதயவு செய்து உடனடியாக அவர்களைத் தொடர்பு கொள்ளவும் அல்லது அவசர சேவைகளை அழைக்கவும்.\n\nசகி - பெண்கள் பாதுகாப்பு ஆப் மூலம் அனுப்பப்பட்டது",
		models.LangTelugu:  "🚨 సఖి యాప్ నుండి అత్యవసర హెచ్చరిక 🚨\n\n{userName} కు తక్షణ సహాయం అవసరం!\n\nస్థానం: {location}\nసమయం: {time}\n\nదయచేసి వెంటనే వారిని సంప్రదించండి లేదా అత్యవసర సేవలకు కాల్ చేయండి.\n\nసఖి - మహిళా భద్రతా యాప్ ద్వారా పంపబడింది",
	},
	models.KindSafetyAlert: {
		models.LangEnglish: "⚠️ Safety Alert from Sakhi App\n\n{userName} is in an unsafe area.\n\nLocation: {location}\nTime: {time}\n\nPlease check on them.\n\nSent via Sakhi - Women Safety App",
		models.LangHindi:   "⚠️ सखी ऐप से सुरक्षा अलर्ट\n\n{userName} असुरक्षित क्षेत्र में है।\n\nस्थान: {location}\nसमय: {time}\n\nकृपया उनकी जांच करें।\n\nसखी - महिला सुरक्षा ऐप द्वारा भेजा गया",
		models.LangKannada: "⚠️ ಸಖಿ ಆ್ಯಪ್‌ನಿಂದ ಸುರಕ್ಷತಾ ಎಚ್ಚರಿಕೆ\n\n{userName} ಅಸುರಕ್ಷಿತ ಪ್ರದೇಶದಲ್ಲಿದ್ದಾರೆ.\n\nಸ್ಥಳ: {location}\nಸಮಯ: {time}\n\nದಯವಿಟ್ಟು ಅವರನ್ನು ಪರಿಶೀಲಿಸಿ.\n\nಸಖಿ - ಮಹಿಳಾ ಸುರಕ್ಷತಾ ಆ್ಯಪ್ ಮೂಲಕ ಕಳುಹಿಸಲಾಗಿದೆ",
		models.LangTamil:   "⚠️ சகி ஆப்பிலிருந்து பாதுகாப்பு எச்சரிக்கை\n\n{userName} பாதுகாப்பற்ற பகுதியில் உள்ளார்.\n\nஇடம்: {location}\nநேரம்: {time}\n\nதயவு செய்து அவர்களைச் சரிபார்க்கவும்.\n\nசகி - பெண்கள் பாதுகாப்பு ஆப் மூலம் அனுப்பப்பட்டது",
		models.LangTelugu:  "⚠️ సఖి యాప్ నుండి భద్రతా హెచ్చరిక\n\n{userName} అసురక్షిత ప్రాంతంలో ఉన్నారు.\n\nస్థానం: {location}\nసమయం: {time}\n\nదయచేసి వారిని తనిఖీ చేయండి.\n\nసఖి - మహిళా భద్రతా యాప్ ద్వారా పంపబడింది",
	},
	models.KindCheckIn: {
		models.LangEnglish: "ℹ️ Check-in from Sakhi App\n\n{userName} has reached their destination safely.\n\nLocation: {location}\nTime: {time}\n\nSent via Sakhi - Women Safety App",
		models.LangHindi:   "ℹ️ सखी ऐप से चेक-इन\n\n{userName} सुरक्षित रूप से अपने गंतव्य पर पहुंच गए हैं।\n\nस्थान: {location}\nसमय: {time}\n\nसखी - महिला सुरक्षा ऐप द्वारा भेजा गया",
		models.LangKannada: "ℹ️ ಸಖಿ ಆ್ಯಪ್‌ನಿಂದ ಚೆಕ್-ಇನ್\n\n{userName} ಸುರಕ್ಷಿತವಾಗಿ ತಮ್ಮ ಗಮ್ಯಸ್ಥಾನವನ್ನು ತಲುಪಿದ್ದಾರೆ.\n\nಸ್ಥಳ: {location}\nಸಮಯ: {time}\n\nಸಖಿ - ಮಹಿಳಾ ಸುರಕ್ಷತಾ ಆ್ಯಪ್ ಮೂಲಕ ಕಳುಹಿಸಲಾಗಿದೆ",
		models.LangTamil:   "ℹ️ சகி ஆப்பிலிருந்து செக்-இன்\n\n{userName} பாதுகாப்பாக தங்கள் இலக்கை அடைந்துள்ளார்.\n\nஇடம்: {location}\nநேரம்: {time}\n\nசகி - பெண்கள் பாதுகாப்பு ஆப் மூலம் அனுப்பப்பட்டது",
		models.LangTelugu:  "ℹ️ సఖి యాప్ నుండి చెక్-ఇన్\n\n{userName} సురక్షితంగా వారి గమ్యస్థానానికి చేరుకున్నారు.\n\nస్థానం: {location}\nసమయం: {time}\n\nసఖి - మహిళా భద్రతా యాప్ ద్వారా పంపబడింది",
	},
	models.KindLowBattery: {
		models.LangEnglish: "🔋 Low Battery Alert from Sakhi App\n\n{userName}'s phone battery is low (below 15%).\n\nLast known location: {location}\nTime: {time}\n\nSent via Sakhi - Women Safety App",
		models.LangHindi:   "🔋 सखी ऐप से कम बैटरी अलर्ट\n\n{userName} के फोन की बैटरी कम है (15% से कम)।\n\nअंतिम ज्ञात स्थान: {location}\nसमय: {time}\n\nसखी - महिला सुरक्षा ऐप द्वारा भेजा गया",
		models.LangKannada: "🔋 ಸಖಿ ಆ್ಯಪ್‌ನಿಂದ ಕಡಿಮೆ ಬ್ಯಾಟರಿ ಎಚ್ಚರಿಕೆ\n\n{userName} ಅವರ ಫೋನ್ ಬ್ಯಾಟರಿ ಕಡಿಮೆಯಾಗಿದೆ (15% ಕ್ಕಿಂತ ಕಡಿಮೆ).\n\nಕೊನೆಯ ತಿಳಿದಿರುವ ಸ್ಥಳ: {location}\nಸಮಯ: {time}\n\nಸಖಿ - ಮಹಿಳಾ ಸುರಕ್ಷತಾ ಆ್ಯಪ್ ಮೂಲಕ ಕಳುಹಿಸಲಾಗಿದೆ",
		models.LangTamil:   "🔋 சகி ஆப்பிலிருந்து குறைந்த பேட்டரி எச்சரிக்கை\n\n{userName} இன் தொலைபேசி பேட்டரி குறைவாக உள்ளது (15% க்கும் குறைவாக).\n\nகடைசியாக தெரிந்த இடம்: {location}\nநேரம்: {time}\n\nசகி - பெண்கள் பாதுகாப்பு ஆப் மூலம் அனுப்பப்பட்டது",
		models.LangTelugu:  "🔋 సఖి యాప్ నుండి తక్కువ బ్యాటరీ హెచ్చరిక\n\n{userName} యొక్క ఫోన్ బ్యాటరీ తక్కువగా ఉంది (15% కంటే తక్కువ).\n\nచివరిగా తెలిసిన స్థానం: {location}\nసమయం: {time}\n\nసఖి - మహిళా భద్రతా యాప్ ద్వారా పంపబడింది",
	},
}
