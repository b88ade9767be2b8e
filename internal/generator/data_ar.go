package generator

// префикс саудовского мобильного номера, за ним следуют 8 цифр
const arPhonePrefix = "+9665"

var arMaleFirstNames = []string{
	"محمد", "أحمد", "عبدالله", "خالد", "فهد", "سعود", "عمر", "علي",
	"يوسف", "إبراهيم", "عبدالرحمن", "سلطان", "ناصر", "فيصل", "تركي", "ماجد",
	"بندر", "سعد", "حمد", "ياسر", "طلال", "مشعل", "نواف", "بدر",
	"راشد", "وليد", "زياد", "مازن", "هشام", "عادل",
}

var arFemaleFirstNames = []string{
	"فاطمة", "نورة", "سارة", "مريم", "عائشة", "هند", "ريم", "لطيفة",
	"منيرة", "أمل", "هيفاء", "جواهر", "شهد", "لمى", "غادة", "دانة",
	"رنا", "أسماء", "خديجة", "ليلى", "حصة", "العنود", "رهف", "جود",
	"لينا", "وعد", "بشرى", "سلمى", "نجلاء", "هيا",
}

var arLastNames = []string{
	"العتيبي", "القحطاني", "الغامدي", "الزهراني", "الشمري", "الدوسري", "الحربي", "المطيري",
	"السبيعي", "العنزي", "الشهري", "العمري", "المالكي", "البقمي", "الرشيدي", "الخالدي",
	"السهلي", "التميمي", "الجهني", "الأحمدي", "الشهراني", "العسيري", "القرني", "الفيفي",
	"اليامي",
}

var arJobs = []string{
	"مهندس برمجيات", "طبيب", "معلم", "محاسب", "ممرض", "صيدلي", "محامي", "مصمم جرافيك",
	"مدير مشاريع", "فني كهرباء", "طيار", "مهندس مدني", "محلل بيانات", "مسوق رقمي", "مترجم",
	"صحفي", "مهندس معماري", "أخصائي موارد بشرية", "باحث", "مدير مبيعات", "طاهٍ", "أمين مكتبة",
	"مستشار مالي", "طبيب أسنان", "مصور",
}

var arCities = []string{
	"الرياض", "جدة", "مكة المكرمة", "المدينة المنورة", "الدمام", "الخبر", "الطائف",
	"تبوك", "بريدة", "أبها", "حائل", "نجران", "جازان", "الأحساء", "ينبع",
	"القطيف", "خميس مشيط", "الجبيل", "عرعر", "سكاكا",
}

var arStreets = []string{
	"شارع الملك فهد", "شارع الملك عبدالعزيز", "شارع التحلية", "شارع العليا",
	"طريق الأمير سلطان", "شارع الأمير محمد بن عبدالعزيز", "شارع الستين", "شارع الخليج",
	"طريق المدينة", "شارع الجامعة", "شارع الأندلس", "طريق الملك عبدالله",
}

var arDistricts = []string{
	"حي النخيل", "حي الملز", "حي الروضة", "حي السلامة", "حي الحمراء", "حي الشاطئ",
	"حي العزيزية", "حي الورود", "حي الفيصلية", "حي الربوة", "حي الياسمين", "حي المروج",
}

// латинские части адресов электронной почты
var arEmailWords = []string{
	"sabah", "noor", "qamar", "najm", "bahr", "sahra", "nakhla", "ward",
	"shams", "ghaim", "jabal", "wadi", "fajr", "nasim", "layl", "barq",
	"dana", "lulu", "faris", "saqr",
}

var arEmailDomains = []string{
	"example.com", "example.net", "example.sa", "mail.example.sa",
}
