package letters

// Fixed letter bodies.  Placeholders in braces are replaced by Compose;
// everything else is the office's standing text.  Each body is addressed
// to the consumer whose name/guardian/address appear in the recipient
// block rendered by the client, so the bodies open directly with the
// matter at hand.

var bodies = map[Type]string{
	TypeDue: `সম্মানিত গ্রাহক, অত্যন্ত দুঃখের সাথে জানানো যাচ্ছে যে, আপনার হিসাব নং {accNo} এর বিপরীতে বিগত {dueMonths} মাসের মোট {dueAmount} টাকা বকেয়া রয়েছে। একাধিকবার তাগাদা প্রদান সত্ত্বেও উক্ত বকেয়া অদ্যাবধি পরিশোধ করা হয়নি। অত্র পত্র প্রাপ্তির ০৭ (সাত) কার্যদিবসের মধ্যে সমুদয় বকেয়া বিল সারচার্জসহ পরিশোধের জন্য অনুরোধ করা হলো। অন্যথায় কোনোরূপ পূর্ব নোটিশ ছাড়াই আপনার বিদ্যুৎ সংযোগ বিচ্ছিন্ন করা হবে এবং পুনঃসংযোগের ক্ষেত্রে বিধি মোতাবেক পুনঃসংযোগ ফি প্রযোজ্য হবে।`,

	TypePDR: `উপযুক্ত বিষয়ে আপনার দৃষ্টি আকর্ষণপূর্বক জানানো যাচ্ছে যে, আপনার হিসাব নং {accNo} এর বিপরীতে {dueAmount} টাকা দীর্ঘদিন যাবৎ বকেয়া রয়েছে। বারংবার নোটিশ প্রদান সত্ত্বেও উক্ত পাওনা পরিশোধ না করায় The Public Demands Recovery (PDR) Act, 1913 অনুযায়ী আপনার বিরুদ্ধে সার্টিফিকেট মামলা দায়েরের চূড়ান্ত সিদ্ধান্ত গৃহীত হয়েছে। মামলা দায়েরের পূর্বে শেষবারের মতো অত্র পত্র প্রাপ্তির ০৭ (সাত) কার্যদিবসের মধ্যে সমুদয় বকেয়া পরিশোধের সুযোগ প্রদান করা হলো; অন্যথায় মামলা সংক্রান্ত সকল আইনি ও প্রশাসনিক ব্যয়ভার আপনাকে বহন করতে হবে।`,

	TypeLegal: `উপযুক্ত বিষয়ে আপনার দৃষ্টি আকর্ষণপূর্বক জানানো যাচ্ছে যে, আপনার বিদ্যুৎ সংযোগের বিপরীতে দীর্ঘদিনের বকেয়া পাওনা আদায়ের লক্ষে সমিতি কর্তৃক ইতিপূর্বে একাধিকবার মৌখিক তাগাদা ও লিখিত নোটিশ প্রদান করা হয়েছে। স্মর্তব্য যে, বকেয়া বিদ্যুৎ বিল একটি সরকারি পাওনা এবং এটি পরিশোধ না করা বিদ্যুৎ আইন, ২০১৮ এর পরিপন্থী। এমতাবস্থায়, মামলার দীর্ঘসূত্রিতা ও আনুষঙ্গিক ব্যয়ভার এড়াতে অত্র পত্র প্রাপ্তির ০৭ (সাত) কার্যদিবসের মধ্যে সকল বকেয়া পাওনা ও সারচার্জ পরিশোধের শেষ সুযোগ প্রদান করা হলো। অন্যথায় আপনার বিরুদ্ধে আইনগত ব্যবস্থা গ্রহণ করা হবে।`,

	TypeRefund: `সম্মানিত গ্রাহক, আপনার আবেদনের প্রেক্ষিতে জানানো যাচ্ছে যে, প্রচলিত নীতিমালা অনুযায়ী আপনার অনুকূলে জমাকৃত নিরাপত্তা জামানতের (Security Deposit) অর্থ সমন্বয় অথবা রিফান্ড করার বিষয়টি অনুমোদিত হয়েছে। বকেয়া পাওনা (যদি থাকে) জামানতের অর্থ হতে সমন্বয়ের পর অবশিষ্ট অর্থ বিধি মোতাবেক ফেরত প্রদান করা হবে। মূল জামানত রশিদ, সর্বশেষ পরিশোধিত বিলের কপি এবং জাতীয় পরিচয়পত্রের ফটোকপিসহ আগামী ০৭ (সাত) কার্যদিবসের মধ্যে অত্র দপ্তরের বিলিং শাখায় যোগাযোগের জন্য অনুরোধ করা হলো।`,

	TypePF: `সম্মানিত গ্রাহক, আপনার সংযোগের (হিসাব নং {accNo}) মাসিক বিদ্যুৎ ব্যবহার বিশ্লেষণে দেখা যায়, সংযোগটির পাওয়ার ফ্যাক্টর বর্তমানে {pf}, যা বিদ্যুৎ সরবরাহ বিধিমালায় নির্ধারিত ন্যূনতম মানের নিচে। নির্ধারিত মাত্রার নিম্ন পাওয়ার ফ্যাক্টরের জন্য বিধি মোতাবেক আপনার বিলের সাথে সারচার্জ আরোপযোগ্য। যথাযথ মানের ক্যাপাসিটর ব্যাংক স্থাপনপূর্বক পাওয়ার ফ্যাক্টর উন্নয়ন করে সারচার্জ পরিহারের জন্য অনুরোধ করা হলো।`,

	TypeLoad: `সম্মানিত গ্রাহক, পরিদর্শন ও লোড ডাটা বিশ্লেষণে প্রতীয়মান হয় যে, আপনার সংযোগে (হিসাব নং {accNo}) অনুমোদিত লোড অপেক্ষা অধিক লোড ব্যবহৃত হচ্ছে, যা বিতরণ ব্যবস্থার উপর অতিরিক্ত চাপ সৃষ্টি করছে। অত্র পত্র প্রাপ্তির ০৭ (সাত) কার্যদিবসের মধ্যে নির্ধারিত ফি প্রদানপূর্বক অতিরিক্ত লোড নিয়মিতকরণের জন্য অনুরোধ করা হলো; অন্যথায় বিধি মোতাবেক ব্যবস্থা গ্রহণ করা হবে।`,

	TypeSysLoss: `সম্মানিত গ্রাহক, আপনার বিদ্যুৎ সংযোগের লোড প্রোফাইল এবং মাসিক বিদ্যুৎ ব্যবহার ডাটা বিশ্লেষণ করে দেখা গেছে যে, সংযোগটিতে অস্বাভাবিক কারিগরি ক্ষতি (System Loss) পরিলক্ষিত হচ্ছে, যা প্রধানত অভ্যন্তরীণ ওয়্যারিং-এর ত্রুটি বা নিম্নমানের বৈদ্যুতিক সরঞ্জাম ব্যবহারের ফল। অত্র পত্র প্রাপ্তির ০৭ (সাত) কার্যদিবসের মধ্যে লাইসেন্সপ্রাপ্ত ইলেকট্রিশিয়ান দ্বারা সম্পূর্ণ ওয়্যারিং পরীক্ষা করিয়ে প্রতিবেদন অত্র দপ্তরে দাখিলের জন্য অনুরোধ করা হলো; অন্যথায় কারিগরি নিরাপত্তার স্বার্থে সংযোগটি সাময়িকভাবে বিচ্ছিন্ন করা হতে পারে।`,

	TypeBoard: `সরেজমিনে পরিদর্শনে প্রতীয়মান হয় যে, আপনার বিদ্যুৎ সংযোগের মিটার বোর্ডটি বর্তমানে অনিরাপদ বা দুর্গম স্থানে স্থাপিত রয়েছে, যা মিটার রিডিং গ্রহণ ও জরুরি রক্ষণাবেক্ষণ কাজে বিঘ্ন সৃষ্টি করছে। আগামী ০৭ (সাত) কার্যদিবসের মধ্যে নিজস্ব ব্যবস্থাপনায় এবং সমিতির কারিগরি তত্ত্বাবধানে মিটার বোর্ডটি একটি দৃশ্যমান ও সহজগম্য স্থানে স্থানান্তরের অনুরোধ করা হলো। অন্যথায় নিরাপত্তার স্বার্থে আপনার বিদ্যুৎ সরবরাহ সাময়িকভাবে বিচ্ছিন্ন করা হতে পারে।`,

	TypeTrans: `সম্মানিত গ্রাহক, জানানো যাচ্ছে যে, গত {date} তারিখে আপনার প্রতিষ্ঠানে বিদ্যুৎ সরবরাহকারী বিতরণ ট্রান্সফরমারটি বিকল/পুড়ে গেছে। প্রাথমিক তদন্ত ও লোড ডাটা বিশ্লেষণে প্রতীয়মান হয় যে, অনুমোদিত লোড অপেক্ষা অতিরিক্ত লোড ব্যবহারের ফলে উক্ত ট্রান্সফরমারটি ক্ষতিগ্রস্ত হয়েছে। বিধি মোতাবেক গ্রাহকের অবহেলায় সংঘটিত এরূপ ক্ষতির দায়ভার সংশ্লিষ্ট গ্রাহককে বহন করতে হয়। ক্ষতিগ্রস্ত ট্রান্সফরমার প্রতিস্থাপন ব্যয় নির্ধারণের লক্ষে অত্র পত্র প্রাপ্তির ০৩ (তিন) কার্যদিবসের মধ্যে অফিসে সরাসরি যোগাযোগের জন্য অনুরোধ করা হলো।`,

	TypeHooking: `উপযুক্ত বিষয়ে জানানো যাচ্ছে যে, গত {date} তারিখে পরিদর্শনকালে আপনার আঙিনায় মিটার ব্যতিরেকে সরাসরি লাইন হতে অবৈধভাবে বিদ্যুৎ ব্যবহারের (হুকিং/বাইপাস) প্রমাণ পাওয়া গেছে। অবৈধ বিদ্যুৎ ব্যবহার বিদ্যুৎ আইন, ২০১৮ অনুযায়ী দণ্ডনীয় অপরাধ। এমতাবস্থায় আরোপিত জরিমানা ও ক্ষতিপূরণমূলক বিল আগামী ০৩ (তিন) কার্যদিবসের মধ্যে অত্র দপ্তরে জমা প্রদানের জন্য অনুরোধ করা হলো; অন্যথায় আপনার বিরুদ্ধে নিয়মিত ফৌজদারি মামলা দায়ের করা হবে।`,

	TypeSeal: `উপযুক্ত বিষয়ে জানানো যাচ্ছে যে, গত {date} তারিখে সমিতির পরিদর্শন দল কর্তৃক আপনার সংযোগটি সরেজমিনে পরিদর্শনকালে মিটারের বডি সিল এবং টার্মিনাল সিল ভাঙা/টেম্পারিং অবস্থায় পাওয়া গেছে। মিটারে অবৈধ হস্তক্ষেপ বিদ্যুৎ আইন, ২০১৮ এর ৩২, ৩৯ ও ৪০ ধারা অনুযায়ী গুরুতর দণ্ডনীয় অপরাধ বিধায় সংযোগটি তাৎক্ষণিকভাবে বিচ্ছিন্ন করা হয়েছে। আরোপিত জরিমানা, ক্ষতিপূরণমূলক বিল এবং নতুন মিটার ফি আগামী ০৩ (তিন) কার্যদিবসের মধ্যে জমা প্রদানপূর্বক সংযোগটি নিয়মিত করার জন্য অনুরোধ করা হলো।`,

	TypeShift: `উপযুক্ত বিষয়ে জানানো যাচ্ছে যে, সরেজমিনে পরিদর্শনে দেখা গেছে আপনি আপনার বিদ্যুৎ মিটারটি (মিটার নং: {meterNo}) সমিতির লিখিত পূর্বানুমতি বা কারিগরি তদারকি ছাড়াই আদি স্থান হতে অন্য স্থানে স্থানান্তর করেছেন, যা একটি দণ্ডনীয় অপরাধ। অত্র পত্র প্রাপ্তির ০৫ (পাঁচ) কার্যদিবসের মধ্যে অফিসে উপস্থিত হয়ে নির্ধারিত স্থানান্তর ফি, কারিগরি ফি এবং জরিমানা প্রদানপূর্বক সংযোগটি নিয়মিত করার জন্য নির্দেশ প্রদান করা হলো।`,

	TypeObst: `উপযুক্ত বিষয়ে জানানো যাচ্ছে যে, গত {date} তারিখে সমিতির কর্মীবৃন্দ আপনার আঙিনায় দাপ্তরিক কাজে নিয়োজিত থাকাকালীন বাধা প্রদান ও অসদাচরণের অভিযোগ পাওয়া গেছে। সরকারি দাপ্তরিক কাজে বাধা প্রদান বাংলাদেশ দণ্ডবিধির ধারা ১৫২/১৮৬/৫০৪ এবং বিদ্যুৎ আইন, ২০১৮ অনুযায়ী আমলযোগ্য অপরাধ। এ ধরণের কর্মকাণ্ড থেকে বিরত থাকার জন্য আপনাকে কঠোরভাবে সতর্ক করা হলো; পুনরাবৃত্তি ঘটলে সংযোগ বিচ্ছিন্নকরণসহ আইনানুগ ব্যবস্থা গ্রহণ করা হবে।`,

	TypeGeneral: `সম্মানিত গ্রাহক, আপনার দাখিলকৃত আবেদনের প্রেক্ষিতে জানানো যাচ্ছে যে, প্রচলিত বিধিমালা ও কর্তৃপক্ষের সিদ্ধান্ত অনুযায়ী আপনার বিষয়টি যথাযথভাবে নিষ্পত্তি করা হয়েছে। নিষ্পত্তির ফলাফল এবং পরবর্তী করণীয় সম্পর্কে বিস্তারিত জানার জন্য সংশ্লিষ্ট অফিসের সদস্য সেবা বিভাগে সরাসরি যোগাযোগের জন্য অনুরোধ করা হলো।`,
}
